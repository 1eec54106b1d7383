package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailAndPasswordRequired is returned when registration input is incomplete.
	ErrEmailAndPasswordRequired = errors.New("Email and password required")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("User already exists")
	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password both map here; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrMissingToken is returned when a protected route is called without an
	// Authorization header.
	ErrMissingToken = errors.New("Missing token")
	// ErrInvalidToken is returned when a presented token is malformed,
	// carries a bad signature, or has expired.
	ErrInvalidToken = errors.New("Invalid token")
	// ErrNameRequired is returned when a contact has no name.
	ErrNameRequired = errors.New("Name is required")
	// ErrContactNotFound is returned when a contact does not exist or belongs
	// to another user; the two cases are deliberately indistinguishable.
	ErrContactNotFound = errors.New("Contact not found")
)

// ErrorResponse is the single-field error body every failure returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError pairs a domain error with the status code it maps to.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ToErrorResponse converts an HTTPError to the wire shape.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// 500 without leaking their message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailAndPasswordRequired),
		errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrNameRequired):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, ErrContactNotFound):
		return &HTTPError{StatusCode: http.StatusNotFound, Message: err.Error()}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}
