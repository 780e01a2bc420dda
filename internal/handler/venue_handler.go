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

// VenueHandler handles owner-scoped venue endpoints.
type VenueHandler struct {
	venueService service.VenueService
	guard        *auth.Guard
}

// NewVenueHandler creates a new venue handler.
func NewVenueHandler(venueService service.VenueService, guard *auth.Guard) *VenueHandler {
	return &VenueHandler{venueService: venueService, guard: guard}
}

// VenueRequest represents a venue create or update request.
type VenueRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=45"`
	Phone   string `json:"phone" form:"phone" validate:"required,max=45,e164"`
	Address string `json:"address" form:"address" validate:"required,max=45"`
}

// Index godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /venues [get]
func (h *VenueHandler) Index(c echo.Context) error {
	if _, err := h.guard.Require(c, model.RoleOwner); err != nil {
		return domainError(err)
	}

	venues, err := h.venueService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "loaded!", Data: venues})
}

// Store godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VenueRequest true "Venue data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /venues [post]
func (h *VenueHandler) Store(c echo.Context) error {
	owner, err := h.guard.Require(c, model.RoleOwner)
	if err != nil {
		return domainError(err)
	}

	var req VenueRequest
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

	venue, err := h.venueService.Create(c.Request().Context(), owner.ID, req.Name, req.Phone, req.Address)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, Response{Message: "venue registered", Data: venue})
}

// Show godoc
// @Summary Venue detail with bookings on a date
// @Description Joins the venue with its fields' bookings starting on play_date_start (default today).
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Param play_date_start query string false "Date filter (YYYY-MM-DD)"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /venues/{venue_id} [get]
func (h *VenueHandler) Show(c echo.Context) error {
	if _, err := h.guard.Require(c, model.RoleOwner); err != nil {
		return domainError(err)
	}

	id, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}

	playDate := time.Now()
	if raw := c.QueryParam("play_date_start"); raw != "" {
		parsed, err := parsePlayDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid play_date_start, expected YYYY-MM-DD",
				Code:  "INVALID_DATE",
			})
		}
		playDate = parsed
	}

	rows, err := h.venueService.Detail(c.Request().Context(), id, playDate)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "loaded!", Data: rows})
}

// Update godoc
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Param request body VenueRequest true "Venue data"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /venues/{venue_id} [put]
func (h *VenueHandler) Update(c echo.Context) error {
	owner, err := h.guard.Require(c, model.RoleOwner)
	if err != nil {
		return domainError(err)
	}

	id, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}

	var req VenueRequest
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

	venue, err := h.venueService.Update(c.Request().Context(), owner.ID, id, req.Name, req.Phone, req.Address)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "updated!", Data: venue})
}

// parsePlayDate accepts a bare date or a full datetime.
func parsePlayDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", raw)
}
