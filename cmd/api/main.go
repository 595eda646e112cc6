package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"venuebook/internal/config"
	"venuebook/internal/database"
	"venuebook/internal/middleware"
	"venuebook/internal/modules/admin"
	"venuebook/internal/modules/auth"
	"venuebook/internal/modules/booking"
	"venuebook/internal/modules/catalog"
	"venuebook/internal/modules/favorite"
	"venuebook/internal/modules/review"
	"venuebook/internal/modules/subscription"
	jwtsvc "venuebook/internal/pkg/jwt"
	"venuebook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	ownerRepo := repository.NewVenueOwnerRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j, cfg.OTPTTL)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(venueRepo, ownerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, venueRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	favoriteService := favorite.NewService(favoriteRepo, venueRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	adminService := admin.NewService(venueRepo, bookingRepo, userRepo)
	adminHandler := admin.NewHandler(adminService)

	subService := subscription.NewService(subRepo, ownerRepo)
	subHandler := subscription.NewHandler(subService)

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)

		// any authenticated user
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
		}

		// venue owners
		owner := api.Group("/")
		owner.Use(middleware.JWTAuth(j), middleware.VenueOwnerOnly())
		{
			catalogHandler.RegisterOwnerRoutes(owner)
		}

		// admins
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			subHandler.RegisterRoutes(adminGroup)
		}
	}

	log.Println("listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
