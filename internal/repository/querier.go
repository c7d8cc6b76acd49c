// Package repository defines the storage seam the services depend on.
// internal/postgres provides the production implementation; tests substitute
// in-memory fakes.
package repository

import (
	"context"

	"github.com/wicaksana/atelier/internal/domain"
)

// Querier is the full storage surface. Implementations return
// domain sentinel errors for not-found and conflict conditions so services
// can branch without knowing the backend.
type Querier interface {
	// -------------------------------------------------------------------------
	// Catalog
	// -------------------------------------------------------------------------

	// ListProducts returns products in insertion order. With onlyPublished
	// set, unpublished rows are excluded.
	ListProducts(ctx context.Context, onlyPublished bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) error
	UpdateProduct(ctx context.Context, id string, params domain.UpdateProductParams) error
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// -------------------------------------------------------------------------
	// Vouchers
	// -------------------------------------------------------------------------

	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	GetVoucherByCode(ctx context.Context, code string) (domain.Voucher, error)
	CreateVoucher(ctx context.Context, params domain.CreateVoucherParams) (domain.Voucher, error)
	UpdateVoucher(ctx context.Context, code string, params domain.UpdateVoucherParams) error
	DeleteVoucher(ctx context.Context, code string) error

	// RedeemVoucher increments used_count if and only if the voucher is
	// active and under its usage cap, in a single statement, so concurrent
	// redemptions near the cap cannot race past it. Returns
	// domain.ErrVoucherExhausted when the guard fails.
	RedeemVoucher(ctx context.Context, code string) error

	// -------------------------------------------------------------------------
	// Carts
	// -------------------------------------------------------------------------

	GetCartBySession(ctx context.Context, sessionID string) (domain.Cart, error)
	CreateCart(ctx context.Context, sessionID string) (domain.Cart, error)
	GetCartItems(ctx context.Context, cartID string) ([]domain.CartItem, error)
	FindCartItem(ctx context.Context, cartID, productID, color, size string) (domain.CartItem, error)
	GetCartItem(ctx context.Context, itemID string) (domain.CartItem, error)
	InsertCartItem(ctx context.Context, item domain.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, itemID string, quantity int) error
	DeleteCartItem(ctx context.Context, itemID string) error
	ClearCart(ctx context.Context, cartID string) error

	// -------------------------------------------------------------------------
	// Orders
	// -------------------------------------------------------------------------

	// CreateOrder persists the order with its items and decrements product
	// stock in one transaction.
	CreateOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, id string) (domain.Order, error)

	// -------------------------------------------------------------------------
	// Blog
	// -------------------------------------------------------------------------

	ListPosts(ctx context.Context, onlyPublished bool) ([]domain.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (domain.Post, error)
	CreatePost(ctx context.Context, post domain.Post) error
	UpdatePost(ctx context.Context, id string, params domain.UpdatePostParams) error
	DeletePost(ctx context.Context, id string) error

	// -------------------------------------------------------------------------
	// Site content
	// -------------------------------------------------------------------------

	GetHero(ctx context.Context) (domain.Hero, error)
	UpsertHero(ctx context.Context, hero domain.Hero) error
	GetAbout(ctx context.Context) (domain.About, error)
	UpsertAbout(ctx context.Context, about domain.About) error
	ListProjects(ctx context.Context, onlyPublished bool) ([]domain.Project, error)
	UpsertProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, id string) error
	InsertContactMessage(ctx context.Context, msg domain.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)

	// -------------------------------------------------------------------------
	// Settings
	// -------------------------------------------------------------------------

	GetSettings(ctx context.Context) (domain.SiteSettings, error)
	UpdateSettings(ctx context.Context, settings domain.SiteSettings) error
}
