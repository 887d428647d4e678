package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/middleware"
	"staybook/internal/modules/amenity"
	"staybook/internal/modules/auth"
	"staybook/internal/modules/booking"
	"staybook/internal/modules/host"
	"staybook/internal/modules/property"
	"staybook/internal/modules/review"
	"staybook/internal/modules/user"
	jwtsvc "staybook/internal/pkg/jwt"
	"staybook/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	hostRepo := repository.NewHostRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)

	tokens := jwtsvc.New(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokens))
	userHandler := user.NewHandler(user.NewService(userRepo))
	hostHandler := host.NewHandler(host.NewService(hostRepo))
	propertyHandler := property.NewHandler(property.NewService(propertyRepo, hostRepo, amenityRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, userRepo, propertyRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, userRepo, propertyRepo))
	amenityHandler := amenity.NewHandler(amenity.NewService(amenityRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	public := r.Group("/")
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(tokens))

	authHandler.RegisterPublicRoutes(public)
	authHandler.RegisterProtectedRoutes(protected)
	userHandler.RegisterRoutes(public, protected)
	hostHandler.RegisterRoutes(public, protected)
	propertyHandler.RegisterRoutes(public, protected)
	bookingHandler.RegisterRoutes(public, protected)
	reviewHandler.RegisterRoutes(public, protected)
	amenityHandler.RegisterRoutes(public, protected)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
