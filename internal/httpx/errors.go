package httpx

import (
	"net/http"

	"github.com/sundayezeilo/repocatalog/internal/errx"
)

// ErrorKindToStatus maps errx.Kind to the conventional HTTP status code.
// Handlers whose API contract differs for a kind map that kind themselves.
func ErrorKindToStatus(kind errx.Kind) int {
	switch kind {
	case errx.Invalid:
		return http.StatusBadRequest
	case errx.NotFound:
		return http.StatusNotFound
	case errx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKindToCode maps errx.Kind to the "error" code of an ErrorResponse.
func ErrorKindToCode(kind errx.Kind) string {
	switch kind {
	case errx.Invalid:
		return "invalid_input"
	case errx.NotFound:
		return "not_found"
	case errx.Unavailable:
		return "unavailable"
	default:
		return "internal_error"
	}
}
