package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mabar/internal/errors"
)

// Response is the uniform success envelope: a message plus optional payload
// and, for login, the issued token.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Token   string      `json:"token,omitempty"`
}

// domainError translates a service error into an echo HTTP error with the
// standard {error, code} payload.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func invalidParam(name string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid " + name + " parameter",
		Code:  "INVALID_PARAM",
	})
}
