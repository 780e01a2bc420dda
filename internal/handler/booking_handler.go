package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mabar/internal/auth"
	"mabar/internal/errors"
	"mabar/internal/model"
	"mabar/internal/service"
)

// BookingHandler handles user-scoped booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
	guard          *auth.Guard
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService, guard *auth.Guard) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, guard: guard}
}

// BookingRequest represents a booking creation request. PlayDateStart uses
// the "YYYY-MM-DD HH:MM:SS" layout.
type BookingRequest struct {
	PlayDateStart string `json:"play_date_start" form:"play_date_start" validate:"required"`
	PlayDateEnd   string `json:"play_date_end" form:"play_date_end" validate:"required,max=42"`
	FieldID       uint   `json:"field_id" form:"field_id" validate:"required"`
}

// Index godoc
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) Index(c echo.Context) error {
	if _, err := h.guard.Require(c, model.RoleUser); err != nil {
		return domainError(err)
	}

	bookings, err := h.bookingService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "ok", Data: bookings})
}

// Show godoc
// @Summary Booking detail with participants
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) Show(c echo.Context) error {
	if _, err := h.guard.Require(c, model.RoleUser); err != nil {
		return domainError(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return invalidParam("id")
	}

	detail, err := h.bookingService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "loaded", Data: detail})
}

// Create godoc
// @Summary Book a field in a venue
// @Description Creates the booking and the creator's membership row.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Param request body BookingRequest true "Booking data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /venues/{venue_id}/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	user, err := h.guard.Require(c, model.RoleUser)
	if err != nil {
		return domainError(err)
	}

	venueID, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	playDateStart, err := time.Parse("2006-01-02 15:04:05", req.PlayDateStart)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid play_date_start, expected YYYY-MM-DD HH:MM:SS",
			Code:  "INVALID_DATE",
		})
	}

	booking, err := h.bookingService.Create(c.Request().Context(), user.ID, venueID, req.FieldID, playDateStart, req.PlayDateEnd)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, Response{Message: "booking created", Data: booking})
}

// Join godoc
// @Summary Join a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 201 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /bookings/{id}/join [put]
func (h *BookingHandler) Join(c echo.Context) error {
	user, err := h.guard.Require(c, model.RoleUser)
	if err != nil {
		return domainError(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return invalidParam("id")
	}

	if err := h.bookingService.Join(c.Request().Context(), user.ID, id); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, Response{Message: "joined!"})
}

// Unjoin godoc
// @Summary Leave a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id}/unjoin [put]
func (h *BookingHandler) Unjoin(c echo.Context) error {
	user, err := h.guard.Require(c, model.RoleUser)
	if err != nil {
		return domainError(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return invalidParam("id")
	}

	if err := h.bookingService.Unjoin(c.Request().Context(), user.ID, id); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "unjoin success"})
}

// Schedule godoc
// @Summary Schedules of currently active users
// @Description Lists the bookings attended by every user with a live session.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /schedule [get]
func (h *BookingHandler) Schedule(c echo.Context) error {
	if _, err := h.guard.Require(c, model.RoleUser); err != nil {
		return domainError(err)
	}

	entries, err := h.bookingService.Schedule(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "loaded", Data: entries})
}
