package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotVerified is returned when an unverified account attempts login
	// or a guarded operation.
	ErrNotVerified = errors.New("account not verified")
	// ErrOtpNotFound is returned when no pending OTP exists for the user.
	ErrOtpNotFound = errors.New("otp code not found")
	// ErrWrongOtp is returned when the submitted code does not match.
	ErrWrongOtp = errors.New("wrong otp code")
	// ErrAccessDenied is returned on role or ownership mismatch.
	ErrAccessDenied = errors.New("access denied")
	// ErrVenueNotFound is returned when no venue matches the given id.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrFieldNotFound is returned when no field matches the given id.
	ErrFieldNotFound = errors.New("field not found")
	// ErrFieldNotInVenue is returned when a booking targets a field that
	// belongs to a different venue.
	ErrFieldNotInVenue = errors.New("field does not belong to this venue")
	// ErrBookingNotFound is returned when no booking matches the given id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAlreadyJoined is returned on a duplicate join attempt.
	ErrAlreadyJoined = errors.New("already joined this booking")
	// ErrNotJoined is returned when unjoining a booking without a membership.
	ErrNotJoined = errors.New("not joined to this booking")
	// ErrPlayDateTooSoon is returned when the play date is not after today.
	ErrPlayDateTooSoon = errors.New("play date must be at least one day ahead")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrNotVerified:
		return NewHTTPError(http.StatusExpectationFailed, err.Error(), "NOT_VERIFIED")
	case ErrOtpNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "OTP_NOT_FOUND")
	case ErrWrongOtp:
		return NewHTTPError(http.StatusExpectationFailed, err.Error(), "WRONG_OTP")
	case ErrAccessDenied:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "ACCESS_DENIED")
	case ErrVenueNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "VENUE_NOT_FOUND")
	case ErrFieldNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FIELD_NOT_FOUND")
	case ErrFieldNotInVenue:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FIELD_NOT_IN_VENUE")
	case ErrBookingNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOKING_NOT_FOUND")
	case ErrAlreadyJoined:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_JOINED")
	case ErrNotJoined:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_JOINED")
	case ErrPlayDateTooSoon:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PLAY_DATE_TOO_SOON")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
