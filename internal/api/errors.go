package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/typeflow-api/internal/api/shared"
	"github.com/phrazzld/typeflow-api/internal/generation"
	"github.com/phrazzld/typeflow-api/internal/redact"
)

const defaultErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrInvalidOption):
		return http.StatusBadRequest

	// Configuration and provider failures are server-side problems
	case errors.Is(err, generation.ErrConfiguration),
		errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Messages that carry error details are redacted.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return defaultErrorMessage
	}

	switch {
	case errors.Is(err, generation.ErrInvalidOption),
		errors.Is(err, generation.ErrConfiguration):
		return redact.Error(err)

	case errors.Is(err, generation.ErrContentBlocked):
		return "Generated content was blocked by the provider's safety filters"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The language model returned an empty response"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Failed to generate sentence"

	default:
		return defaultErrorMessage
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted error. fallbackMsg replaces the generic message for unknown errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	message := GetSafeErrorMessage(err)
	if message == defaultErrorMessage && fallbackMsg != "" {
		message = fallbackMsg
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}

// SanitizeValidationError turns a validator error into a short message that
// names the offending JSON field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("%s %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case wordCountTag:
		labels := make([]string, 0, len(generation.WordCounts()))
		for _, wc := range generation.WordCounts() {
			labels = append(labels, string(wc))
		}
		return "must be one of " + strings.Join(labels, ", ")
	case difficultyTag:
		labels := make([]string, 0, len(generation.Difficulties()))
		for _, d := range generation.Difficulties() {
			labels = append(labels, string(d))
		}
		return "must be one of " + strings.Join(labels, ", ")
	default:
		return "is invalid"
	}
}
