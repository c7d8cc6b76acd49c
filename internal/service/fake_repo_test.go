package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/repository"
)

// fakeRepo is an in-memory repository.Querier used by the service tests.
// It mirrors the behavior the Postgres store guarantees: sentinel errors for
// missing rows, the guarded voucher redemption, and the stock decrement on
// order creation.
type fakeRepo struct {
	products     map[string]domain.Product
	productOrder []string
	categories   []domain.Category
	vouchers     map[string]domain.Voucher
	carts        map[string]domain.Cart // keyed by session id
	cartItems    map[string]domain.CartItem
	orders       map[string]domain.Order
	posts        map[string]domain.Post
	hero         *domain.Hero
	about        *domain.About
	projects     map[string]domain.Project
	contacts     []domain.ContactMessage
	settings     domain.SiteSettings

	failWith error // when set, every call returns this error
}

var _ repository.Querier = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		products:  make(map[string]domain.Product),
		vouchers:  make(map[string]domain.Voucher),
		carts:     make(map[string]domain.Cart),
		cartItems: make(map[string]domain.CartItem),
		orders:    make(map[string]domain.Order),
		posts:     make(map[string]domain.Post),
		projects:  make(map[string]domain.Project),
		settings:  domain.SiteSettings{Theme: "dark", ParticlesEnabled: true},
	}
}

func (f *fakeRepo) addProduct(p domain.Product) {
	f.products[p.ID] = p
	f.productOrder = append(f.productOrder, p.ID)
}

func (f *fakeRepo) ListProducts(_ context.Context, onlyPublished bool) ([]domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []domain.Product
	for _, id := range f.productOrder {
		p := f.products[id]
		if onlyPublished && !p.Published {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) GetProduct(_ context.Context, id string) (domain.Product, error) {
	if f.failWith != nil {
		return domain.Product{}, f.failWith
	}
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeRepo) CreateProduct(_ context.Context, p domain.Product) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.products[p.ID]; ok {
		return domain.Conflict("fake.create_product", "product id already exists")
	}
	f.addProduct(p)
	return nil
}

func (f *fakeRepo) UpdateProduct(_ context.Context, id string, params domain.UpdateProductParams) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.StockQuantity != nil {
		p.StockQuantity = *params.StockQuantity
	}
	if params.Published != nil {
		p.Published = *params.Published
	}
	f.products[id] = p
	return nil
}

func (f *fakeRepo) DeleteProduct(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeRepo) ListCategories(context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeRepo) ListVouchers(context.Context) ([]domain.Voucher, error) {
	var out []domain.Voucher
	for _, v := range f.vouchers {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeRepo) GetVoucherByCode(_ context.Context, code string) (domain.Voucher, error) {
	if f.failWith != nil {
		return domain.Voucher{}, f.failWith
	}
	v, ok := f.vouchers[code]
	if !ok {
		return domain.Voucher{}, domain.ErrVoucherNotFound
	}
	return v, nil
}

func (f *fakeRepo) CreateVoucher(_ context.Context, params domain.CreateVoucherParams) (domain.Voucher, error) {
	if _, ok := f.vouchers[params.Code]; ok {
		return domain.Voucher{}, domain.ErrDuplicateVoucher
	}
	v := domain.Voucher{
		Code:           params.Code,
		DiscountType:   params.DiscountType,
		DiscountValue:  params.DiscountValue,
		MinOrderAmount: params.MinOrderAmount,
		MaxUses:        params.MaxUses,
		Active:         params.Active,
		StartsAt:       params.StartsAt,
		ExpiresAt:      params.ExpiresAt,
		CreatedAt:      time.Now(),
	}
	f.vouchers[v.Code] = v
	return v, nil
}

func (f *fakeRepo) UpdateVoucher(_ context.Context, code string, params domain.UpdateVoucherParams) error {
	v, ok := f.vouchers[code]
	if !ok {
		return domain.ErrVoucherNotFound
	}
	if params.Active != nil {
		v.Active = *params.Active
	}
	if params.DiscountValue != nil {
		v.DiscountValue = *params.DiscountValue
	}
	f.vouchers[code] = v
	return nil
}

func (f *fakeRepo) DeleteVoucher(_ context.Context, code string) error {
	if _, ok := f.vouchers[code]; !ok {
		return domain.ErrVoucherNotFound
	}
	delete(f.vouchers, code)
	return nil
}

func (f *fakeRepo) RedeemVoucher(_ context.Context, code string) error {
	v, ok := f.vouchers[code]
	if !ok {
		return domain.ErrVoucherNotFound
	}
	if !v.Active || (v.MaxUses != nil && v.UsedCount >= *v.MaxUses) {
		return domain.ErrVoucherExhausted
	}
	v.UsedCount++
	f.vouchers[code] = v
	return nil
}

func (f *fakeRepo) GetCartBySession(_ context.Context, sessionID string) (domain.Cart, error) {
	c, ok := f.carts[sessionID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return c, nil
}

func (f *fakeRepo) CreateCart(_ context.Context, sessionID string) (domain.Cart, error) {
	if c, ok := f.carts[sessionID]; ok {
		return c, nil
	}
	c := domain.Cart{ID: uuid.NewString(), SessionID: sessionID, CreatedAt: time.Now()}
	f.carts[sessionID] = c
	return c, nil
}

func (f *fakeRepo) GetCartItems(_ context.Context, cartID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range f.cartItems {
		if item.CartID == cartID {
			item.Product = f.products[item.Product.ID]
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindCartItem(_ context.Context, cartID, productID, color, size string) (domain.CartItem, error) {
	for _, item := range f.cartItems {
		if item.CartID == cartID && item.Product.ID == productID && item.Color == color && item.Size == size {
			return item, nil
		}
	}
	return domain.CartItem{}, domain.ErrCartItemNotFound
}

func (f *fakeRepo) GetCartItem(_ context.Context, itemID string) (domain.CartItem, error) {
	item, ok := f.cartItems[itemID]
	if !ok {
		return domain.CartItem{}, domain.ErrCartItemNotFound
	}
	return item, nil
}

func (f *fakeRepo) InsertCartItem(_ context.Context, item domain.CartItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	f.cartItems[item.ID] = item
	return nil
}

func (f *fakeRepo) UpdateCartItemQuantity(_ context.Context, itemID string, quantity int) error {
	item, ok := f.cartItems[itemID]
	if !ok {
		return domain.ErrCartItemNotFound
	}
	item.Quantity = quantity
	f.cartItems[itemID] = item
	return nil
}

func (f *fakeRepo) DeleteCartItem(_ context.Context, itemID string) error {
	if _, ok := f.cartItems[itemID]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(f.cartItems, itemID)
	return nil
}

func (f *fakeRepo) ClearCart(_ context.Context, cartID string) error {
	for id, item := range f.cartItems {
		if item.CartID == cartID {
			delete(f.cartItems, id)
		}
	}
	return nil
}

func (f *fakeRepo) CreateOrder(_ context.Context, order domain.Order) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, item := range order.Items {
		p := f.products[item.ProductID]
		if p.Type() != domain.ProductTypeCourse {
			if p.StockQuantity < item.Quantity {
				return domain.ErrOutOfStock
			}
			p.StockQuantity -= item.Quantity
			f.products[item.ProductID] = p
		}
	}
	order.CreatedAt = time.Now()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeRepo) GetOrder(_ context.Context, id string) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeRepo) ListPosts(_ context.Context, onlyPublished bool) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range f.posts {
		if onlyPublished && !p.Published {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) GetPostBySlug(_ context.Context, slug string) (domain.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrPostNotFound
}

func (f *fakeRepo) CreatePost(_ context.Context, post domain.Post) error {
	for _, p := range f.posts {
		if p.Slug == post.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakeRepo) UpdatePost(_ context.Context, id string, params domain.UpdatePostParams) error {
	p, ok := f.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Published != nil {
		p.Published = *params.Published
	}
	f.posts[id] = p
	return nil
}

func (f *fakeRepo) DeletePost(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeRepo) GetHero(context.Context) (domain.Hero, error) {
	if f.hero == nil {
		return domain.Hero{}, domain.ErrHeroNotFound
	}
	return *f.hero, nil
}

func (f *fakeRepo) UpsertHero(_ context.Context, hero domain.Hero) error {
	f.hero = &hero
	return nil
}

func (f *fakeRepo) GetAbout(context.Context) (domain.About, error) {
	if f.about == nil {
		return domain.About{}, domain.ErrAboutNotFound
	}
	return *f.about, nil
}

func (f *fakeRepo) UpsertAbout(_ context.Context, about domain.About) error {
	f.about = &about
	return nil
}

func (f *fakeRepo) ListProjects(_ context.Context, onlyPublished bool) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range f.projects {
		if onlyPublished && !p.Published {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) UpsertProject(_ context.Context, project domain.Project) error {
	f.projects[project.ID] = project
	return nil
}

func (f *fakeRepo) DeleteProject(_ context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeRepo) InsertContactMessage(_ context.Context, msg domain.ContactMessage) error {
	msg.ID = fmt.Sprintf("msg-%d", len(f.contacts)+1)
	f.contacts = append(f.contacts, msg)
	return nil
}

func (f *fakeRepo) ListContactMessages(context.Context) ([]domain.ContactMessage, error) {
	return f.contacts, nil
}

func (f *fakeRepo) GetSettings(context.Context) (domain.SiteSettings, error) {
	return f.settings, nil
}

func (f *fakeRepo) UpdateSettings(_ context.Context, settings domain.SiteSettings) error {
	settings.UpdatedAt = time.Now()
	f.settings = settings
	return nil
}
