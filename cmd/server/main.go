package main

import (
	"log"
	"net/http"
	"os"

	_ "mabar/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mabar/internal/auth"
	"mabar/internal/cache"
	"mabar/internal/config"
	"mabar/internal/db"
	"mabar/internal/handler"
	"mabar/internal/mail"
	"mabar/internal/model"
	"mabar/internal/repository"
	"mabar/internal/router"
	"mabar/internal/service"
)

// @title Mabar Booking API
// @version 1.0
// @description Venue and field booking platform with OTP verified accounts and JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.UserHasBooking{},
			&model.Booking{},
			&model.Field{},
			&model.Venue{},
			&model.OtpCode{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.OtpCode{},
		&model.Venue{},
		&model.Field{},
		&model.Booking{},
		&model.UserHasBooking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	otpRepo := repository.NewOtpRepository(gormDB)
	venueRepo := repository.NewVenueRepository(gormDB)
	fieldRepo := repository.NewFieldRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)
	guard := auth.NewGuard(userRepo, cacheClient)

	mailer := mail.NewSMTPMailer(cfg)

	// Initialize services
	authService := service.NewAuthService(userRepo, otpRepo, jwtService, sessionStore, mailer)
	venueService := service.NewVenueService(venueRepo)
	fieldService := service.NewFieldService(fieldRepo, venueRepo)
	bookingService := service.NewBookingService(bookingRepo, fieldRepo, userRepo, sessionStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	venueHandler := handler.NewVenueHandler(venueService, guard)
	fieldHandler := handler.NewFieldHandler(fieldService, guard)
	bookingHandler := handler.NewBookingHandler(bookingService, guard)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		venueHandler,
		fieldHandler,
		bookingHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
