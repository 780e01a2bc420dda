package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mabar/internal/auth"
	"mabar/internal/config"
	"mabar/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	venueHandler *handler.VenueHandler,
	fieldHandler *handler.FieldHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/otp-confirmation", authHandler.OtpConfirmation)

	// Secured routes (require a bearer token; role and verification are
	// checked per handler by the guard)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Venue routes (owner)
	secured.GET("/venues", venueHandler.Index)
	secured.POST("/venues", venueHandler.Store)
	secured.GET("/venues/:venue_id", venueHandler.Show)
	secured.PUT("/venues/:venue_id", venueHandler.Update)

	// Field routes (owner, nested under a venue)
	secured.GET("/venues/:venue_id/fields", fieldHandler.Index)
	secured.POST("/venues/:venue_id/fields", fieldHandler.Store)
	secured.GET("/venues/:venue_id/fields/:id", fieldHandler.Show)
	secured.PUT("/venues/:venue_id/fields/:id", fieldHandler.Update)
	secured.DELETE("/venues/:venue_id/fields/:id", fieldHandler.Destroy)

	// Booking routes (user)
	secured.POST("/venues/:venue_id/bookings", bookingHandler.Create)
	secured.GET("/schedule", bookingHandler.Schedule)
	secured.GET("/bookings", bookingHandler.Index)
	secured.GET("/bookings/:id", bookingHandler.Show)
	secured.PUT("/bookings/:id/join", bookingHandler.Join)
	secured.PUT("/bookings/:id/unjoin", bookingHandler.Unjoin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
