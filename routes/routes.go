package routes

import (
	"solevara/admin"
	"solevara/auth"
	"solevara/cart"
	"solevara/catalog"
	"solevara/checkout"
	"solevara/contact"
	"solevara/invoice"
	"solevara/middleware"
	"solevara/payment"
	"solevara/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.GET("/api/auth/me", middleware.Authenticate(h.Me))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:id", catalog.GetProduct)
	router.GET("/api/scent-families", catalog.GetScentFamilies)
	router.GET("/api/categories", catalog.GetCategories)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handlers) {
	router.GET("/api/cart", middleware.Authenticate(h.GetCart))
	router.POST("/api/cart", middleware.Authenticate(h.AddToCart))
	router.PUT("/api/cart/:productid", middleware.Authenticate(h.UpdateQuantity))
	router.DELETE("/api/cart/:productid", middleware.Authenticate(h.RemoveFromCart))
	router.POST("/api/coupons/validate", middleware.Authenticate(cart.ValidateCoupon))
}

func AddCheckoutRoutes(router *httprouter.Router, h *checkout.Handlers, rl *ratelim.RateLimiter) {
	router.GET("/api/checkout/shipping-options", h.GetShippingOptions)
	router.GET("/api/checkout/preview", middleware.Authenticate(h.Preview))
	router.POST("/api/checkout", rl.Limit(middleware.Authenticate(h.Submit)))
}

func AddPaymentRoutes(router *httprouter.Router, h *payment.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/payment", rl.Limit(middleware.Authenticate(h.Submit)))
}

func AddInvoiceRoutes(router *httprouter.Router, h *invoice.Handlers) {
	router.GET("/api/invoice/:token", middleware.Authenticate(h.GetInvoice))
	router.GET("/api/invoice/:token/pdf", middleware.Authenticate(h.DownloadInvoice))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(middleware.OptionalAuth(contact.SubmitMessage)))
	router.GET("/api/contact", middleware.Authenticate(middleware.RequireRole("admin", contact.ListMessages)))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/orders", middleware.Authenticate(middleware.RequireRole("admin", admin.ListOrders)))
	router.GET("/api/admin/stats", middleware.Authenticate(middleware.RequireRole("admin", admin.GetStats)))
}
