package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mabar/internal/auth"
	"mabar/internal/errors"
	"mabar/internal/model"
	"mabar/internal/service"
)

// FieldHandler handles field CRUD nested under a venue.
type FieldHandler struct {
	fieldService service.FieldService
	guard        *auth.Guard
}

// NewFieldHandler creates a new field handler.
func NewFieldHandler(fieldService service.FieldService, guard *auth.Guard) *FieldHandler {
	return &FieldHandler{fieldService: fieldService, guard: guard}
}

// FieldRequest represents a field create or update request.
type FieldRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=45"`
	Type string `json:"type" form:"type" validate:"required,oneof=soccer minisoccer futsal basketball volleyball"`
}

// Index godoc
// @Summary List fields of a venue
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /venues/{venue_id}/fields [get]
func (h *FieldHandler) Index(c echo.Context) error {
	if _, err := h.guard.Require(c, model.RoleOwner); err != nil {
		return domainError(err)
	}

	venueID, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}

	fields, err := h.fieldService.ListByVenue(c.Request().Context(), venueID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "loaded!", Data: fields})
}

// Store godoc
// @Summary Create a field in a venue
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Param request body FieldRequest true "Field data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /venues/{venue_id}/fields [post]
func (h *FieldHandler) Store(c echo.Context) error {
	owner, err := h.guard.Require(c, model.RoleOwner)
	if err != nil {
		return domainError(err)
	}

	venueID, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}

	var req FieldRequest
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

	field, err := h.fieldService.Create(c.Request().Context(), owner.ID, venueID, req.Name, model.FieldType(req.Type))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, Response{Message: "field registered", Data: field})
}

// Show godoc
// @Summary Fetch one field of a venue
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Param id path int true "Field ID"
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /venues/{venue_id}/fields/{id} [get]
func (h *FieldHandler) Show(c echo.Context) error {
	if _, err := h.guard.Require(c, model.RoleOwner); err != nil {
		return domainError(err)
	}

	venueID, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return invalidParam("id")
	}

	field, err := h.fieldService.Get(c.Request().Context(), venueID, id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "loaded", Data: field})
}

// Update godoc
// @Summary Update a field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Param id path int true "Field ID"
// @Param request body FieldRequest true "Field data"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /venues/{venue_id}/fields/{id} [put]
func (h *FieldHandler) Update(c echo.Context) error {
	owner, err := h.guard.Require(c, model.RoleOwner)
	if err != nil {
		return domainError(err)
	}

	venueID, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return invalidParam("id")
	}

	var req FieldRequest
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

	field, err := h.fieldService.Update(c.Request().Context(), owner.ID, venueID, id, req.Name, model.FieldType(req.Type))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "field updated!", Data: field})
}

// Destroy godoc
// @Summary Delete a field
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param venue_id path int true "Venue ID"
// @Param id path int true "Field ID"
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /venues/{venue_id}/fields/{id} [delete]
func (h *FieldHandler) Destroy(c echo.Context) error {
	owner, err := h.guard.Require(c, model.RoleOwner)
	if err != nil {
		return domainError(err)
	}

	venueID, err := pathID(c, "venue_id")
	if err != nil {
		return invalidParam("venue_id")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return invalidParam("id")
	}

	if err := h.fieldService.Delete(c.Request().Context(), owner.ID, venueID, id); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{Message: "deleted!"})
}
