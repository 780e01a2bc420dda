package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mabar/internal/errors"
	"mabar/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     string `json:"role" form:"role" validate:"required,oneof=owner user"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// OtpConfirmationRequest represents an OTP confirmation request.
type OtpConfirmationRequest struct {
	Email   string `json:"email" form:"email" validate:"required,email"`
	OtpCode int    `json:"otp_code" form:"otp_code" validate:"required,min=100000,max=999999"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an unverified account and emails a 6-digit OTP code.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} Response
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, Response{
		Message: "register success, please verify your OTP code",
	})
}

// Login godoc
// @Summary Login
// @Description Issues a bearer token for a verified account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 417 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
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

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{
		Message: "login success!",
		Token:   token,
	})
}

// OtpConfirmation godoc
// @Summary Confirm OTP
// @Description Flips is_verified when the submitted code matches the stored one.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body OtpConfirmationRequest true "Email and OTP code"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Failure 417 {object} errors.ErrorResponse
// @Router /otp-confirmation [post]
func (h *AuthHandler) OtpConfirmation(c echo.Context) error {
	var req OtpConfirmationRequest
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

	if err := h.authService.ConfirmOtp(c.Request().Context(), req.Email, req.OtpCode); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, Response{
		Message: "account verified!",
	})
}
