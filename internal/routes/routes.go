// Package routes wires handlers onto the echo router.
package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/handler/admin"
	"github.com/wicaksana/atelier/internal/handler/storefront"
	"github.com/wicaksana/atelier/internal/middleware"
)

// Deps contains everything route registration needs.
type Deps struct {
	Products *storefront.ProductHandler
	Cart     *storefront.CartHandler
	Checkout *storefront.CheckoutHandler
	Content  *storefront.ContentHandler
	Settings *storefront.SettingsHandler

	AdminProducts *admin.ProductHandler
	AdminVouchers *admin.VoucherHandler
	AdminContent  *admin.ContentHandler

	AdminToken string
	Metrics    *middleware.Metrics

	// Healthcheck reports whether the backing services are reachable.
	Healthcheck func(c echo.Context) error
}

// Register attaches all routes to e.
func Register(e *echo.Echo, deps Deps) {
	e.GET("/healthz", deps.Healthcheck)
	e.GET("/metrics", deps.Metrics.Handler())

	api := e.Group("/api")

	// Catalog
	api.GET("/products", deps.Products.List)
	api.GET("/products/:id", deps.Products.Get)
	api.GET("/categories", deps.Products.Categories)

	// Cart
	api.GET("/cart", deps.Cart.Get)
	api.DELETE("/cart", deps.Cart.Clear)
	api.POST("/cart/items", deps.Cart.AddItem)
	api.PATCH("/cart/items/:id", deps.Cart.UpdateItem)
	api.DELETE("/cart/items/:id", deps.Cart.RemoveItem)

	// Checkout and vouchers
	api.POST("/checkout", deps.Checkout.Checkout)
	api.GET("/orders/:id", deps.Checkout.GetOrder)
	api.POST("/vouchers/preview", deps.Checkout.PreviewVoucher)

	// Portfolio content and blog
	api.GET("/hero", deps.Content.Hero)
	api.GET("/about", deps.Content.About)
	api.GET("/projects", deps.Content.Projects)
	api.GET("/posts", deps.Content.ListPosts)
	api.GET("/posts/:slug", deps.Content.GetPost)
	api.POST("/contact", deps.Content.SubmitContact)

	// Site settings, including the live stream the frontend subscribes to
	api.GET("/settings", deps.Settings.Get)
	api.GET("/settings/stream", deps.Settings.Stream)

	adm := e.Group("/admin", middleware.AdminAuth(deps.AdminToken))

	adm.GET("/products", deps.AdminProducts.List)
	adm.POST("/products", deps.AdminProducts.Create)
	adm.POST("/products/import", deps.AdminProducts.Import)
	adm.GET("/products/:id", deps.AdminProducts.Get)
	adm.PATCH("/products/:id", deps.AdminProducts.Update)
	adm.DELETE("/products/:id", deps.AdminProducts.Delete)

	adm.GET("/vouchers", deps.AdminVouchers.List)
	adm.POST("/vouchers", deps.AdminVouchers.Create)
	adm.GET("/vouchers/:code", deps.AdminVouchers.Get)
	adm.PATCH("/vouchers/:code", deps.AdminVouchers.Update)
	adm.DELETE("/vouchers/:code", deps.AdminVouchers.Delete)

	adm.PUT("/hero", deps.AdminContent.UpdateHero)
	adm.PUT("/about", deps.AdminContent.UpdateAbout)
	adm.GET("/projects", deps.AdminContent.ListProjects)
	adm.PUT("/projects/:id", deps.AdminContent.SaveProject)
	adm.DELETE("/projects/:id", deps.AdminContent.DeleteProject)

	adm.GET("/posts", deps.AdminContent.ListPosts)
	adm.POST("/posts", deps.AdminContent.CreatePost)
	adm.PATCH("/posts/:id", deps.AdminContent.UpdatePost)
	adm.DELETE("/posts/:id", deps.AdminContent.DeletePost)

	adm.GET("/contact-messages", deps.AdminContent.ListContactMessages)
	adm.PATCH("/settings", deps.AdminContent.UpdateSettings)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "route not found")
	})
}
