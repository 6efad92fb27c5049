package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"deals4property_echo/internal/handlers"
	authMiddleware "deals4property_echo/internal/middleware"
	"deals4property_echo/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Firebase
	authClient, err := services.InitFirebase()
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth features will not work until valid credentials are provided")
	}

	// Initialize Database
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migration
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	cache, err := services.NewRedisCache(redisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer cache.Close()

	// Initialize external services
	midtransService := services.NewMidtransService()
	checkoutService := services.NewCheckoutService(db, midtransService)
	geodataService := services.NewGeodataService()
	bannerService := services.NewBannerService()

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = authMiddleware.CustomErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authClient, db)
	propertyHandler := handlers.NewPropertyHandler(db)
	adminHandler := handlers.NewAdminHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db, cache, bannerService)
	subscriptionHandler := handlers.NewSubscriptionHandler(db, checkoutService)
	metaHandler := handlers.NewMetaHandler(geodataService, cache)

	// Public routes
	e.POST("/auth/signup", authHandler.HandleSignup)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)
	e.POST("/payment/midtrans/callback", subscriptionHandler.GatewayCallback)

	// Protected routes
	api := e.Group("/api")
	api.Use(authMiddleware.RequireAuth(authClient, db))

	api.GET("/profile", authHandler.Profile)
	api.PUT("/profile", authHandler.UpdateProfile)

	api.GET("/meta/states", metaHandler.States)
	api.GET("/meta/states/:iso2/cities", metaHandler.Cities)
	api.GET("/meta/stations", metaHandler.Stations)
	api.GET("/meta/localities", metaHandler.Localities)

	api.GET("/subscription/locations", subscriptionHandler.Locations)
	api.PUT("/subscription", subscriptionHandler.Save)
	api.POST("/subscription/checkout", subscriptionHandler.Checkout)

	api.POST("/properties/resale", propertyHandler.StoreResale)
	api.POST("/properties/rental", propertyHandler.StoreRental)
	api.PUT("/properties/resale/:id", propertyHandler.UpdateResale)
	api.PUT("/properties/rental/:id", propertyHandler.UpdateRental)
	api.PUT("/properties/:category/:id/listing-state", propertyHandler.UpdateListingState)
	api.GET("/inventory", propertyHandler.MyInventory)

	api.GET("/dashboard/listings", dashboardHandler.Listings)
	api.GET("/dashboard/banners", dashboardHandler.Banners)
	api.POST("/dashboard/share", dashboardHandler.Share)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())

	admin.GET("/approvals", adminHandler.ListApprovals)
	admin.POST("/properties/:category/:id/approve", adminHandler.Approve)
	admin.POST("/properties/:category/:id/reject", adminHandler.Reject)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
