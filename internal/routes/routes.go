package routes

import (
	"aurelia_back_end/internal/handlers"
	"aurelia_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/me", middleware.AuthRequired(), handlers.Me)
		auth.GET("/:provider", handlers.BeginAuth)
		auth.GET("/:provider/callback", handlers.CallbackAuth)
	}

	// Catalog
	products := api.Group("/products")
	{
		products.GET("", handlers.GetProducts)
		products.GET("/search", handlers.SearchProducts)
		products.GET("/:slug", handlers.GetProductBySlug)
	}

	// Gold rates
	api.GET("/gold-prices", handlers.GetGoldPrices)
	api.GET("/gold-prices/history", handlers.GetGoldPriceHistory)

	// Cart: guests use the X-Session-ID header, logged-in users their account
	cart := api.Group("/cart", middleware.AuthOptional())
	{
		cart.GET("", handlers.GetCart)
		cart.DELETE("", handlers.ClearCart)
		cart.POST("/add", handlers.AddToCart)
		cart.POST("/decrease/:slug", handlers.DecreaseCartItem)
		cart.POST("/coupon", handlers.ApplyCoupon)
		cart.DELETE("/coupon", handlers.RemoveCoupon)
		cart.POST("/shipping-address", handlers.SaveShippingAddress)
		cart.POST("/payment-method", handlers.SavePaymentMethod)
		cart.POST("/personal-info", handlers.SavePersonalInfo)
		cart.POST("/gst", handlers.SaveGSTDetails)
	}

	// Payments
	payments := api.Group("/payments", middleware.AuthOptional())
	{
		payments.POST("/:gateway/initiate", handlers.InitiatePayment)
		payments.GET("/:gateway/status/:reference", handlers.PaymentStatus)
		payments.POST("/:gateway/verify", handlers.VerifyPayment)
	}

	// Orders
	orders := api.Group("/orders", middleware.AuthOptional())
	{
		orders.POST("", handlers.CreateOrder)
		orders.GET("/mine", middleware.AuthRequired(), handlers.GetMyOrders)
		orders.GET("/:id", middleware.AuthRequired(), handlers.GetOrderByID)
	}

	// Wishlist
	wishlist := api.Group("/wishlist", middleware.AuthRequired())
	{
		wishlist.GET("", handlers.GetWishlist)
		wishlist.POST("/:productId", handlers.ToggleWishlist)
	}

	// Made-to-order intake
	api.POST("/custom-designs", handlers.SubmitCustomDesign)

	// Stalled checkout snapshots
	api.POST("/abandoned-carts", middleware.AuthRequired(), handlers.CaptureAbandonedCart)

	// Admin
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.GET("/products", handlers.AdminListProducts)
		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.DELETE("/products/:id", handlers.DeleteProduct)

		admin.GET("/orders", handlers.AdminListOrders)
		admin.GET("/orders/:id", handlers.AdminGetOrder)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		admin.PUT("/orders/:id/deliver", handlers.MarkOrderDelivered)
		admin.GET("/orders/:id/invoice", handlers.DownloadInvoice)

		admin.PUT("/gold-prices/:karat", handlers.AdminSetGoldPrice)
		admin.GET("/abandoned-carts", handlers.AdminListAbandonedCarts)

		admin.GET("/users", handlers.AdminListUsers)
		admin.DELETE("/users/:id", handlers.AdminDeleteUser)

		admin.GET("/custom-designs", handlers.ListCustomDesigns)

		admin.GET("/settings", handlers.GetSettings)
		admin.PUT("/settings", handlers.UpdateSettings)
	}
}
