package main

import (
	"context"
	"log"
	"os"
	"time"

	"aurelia_back_end/internal/cart"
	"aurelia_back_end/internal/config"
	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/goldprice"
	"aurelia_back_end/internal/handlers"
	"aurelia_back_end/internal/orders"
	"aurelia_back_end/internal/payments"
	"aurelia_back_end/internal/routes"
	"aurelia_back_end/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Fatal("❌ Cannot initialise Stripe: key missing")
	}
	log.Println("✅ Stripe initialised")

	database.ConnectDatabases()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	orderStore := &orders.MongoOrderStore{Col: database.Mongo.Collection(database.ColOrders)}
	if err := orderStore.EnsureIndexes(ctx); err != nil {
		log.Fatal("❌ Order index creation failed:", err)
	}
	services.EnsureProductIndex(ctx)

	orderService := &orders.Service{
		Orders:         orderStore,
		Stock:          &orders.MongoStockStore{Col: database.Mongo.Collection(database.ColProducts)},
		Locks:          &orders.RedisIntentLock{Client: database.Redis},
		AbandonedCarts: &orders.MongoAbandonedCartStore{Col: database.Mongo.Collection(database.ColAbandonedCarts)},
		Mail:           orders.ConfirmationMailer{},
	}

	registry := payments.NewRegistry(
		payments.NewRazorpayGateway(
			os.Getenv("RAZORPAY_KEY_ID"),
			os.Getenv("RAZORPAY_KEY_SECRET"),
		),
		payments.NewPhonePeGateway(
			os.Getenv("PHONEPE_BASE_URL"),
			os.Getenv("PHONEPE_MERCHANT_ID"),
			os.Getenv("PHONEPE_SALT_KEY"),
			os.Getenv("PHONEPE_SALT_INDEX"),
		),
		payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY")),
	)

	handlers.Init(&cart.RedisPersister{Client: database.Redis}, registry, orderService)
	handlers.InitProviders()

	scheduler := cron.New()
	goldprice.NewRefresher().Start(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Aurelia server listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

func frontendOrigin() string {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return origin
}
