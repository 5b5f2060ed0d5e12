package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mineralagent/mineral-agent-api/internal/lookup"
	"github.com/mineralagent/mineral-agent-api/internal/service"
	"github.com/mineralagent/mineral-agent-api/internal/store"
	"github.com/mineralagent/mineral-agent-api/internal/task"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, task.ErrUnknownTaskType),
		errors.Is(err, lookup.ErrInvalidRUC),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, lookup.ErrCompanyNotFound):
		return http.StatusNotFound

	case errors.Is(err, task.ErrTaskExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, lookup.ErrLookupFailed):
		return http.StatusBadGateway

	case errors.Is(err, service.ErrPriceStoreUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for an error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, task.ErrUnknownTaskType):
		return "Unknown task type"
	case errors.Is(err, task.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, lookup.ErrInvalidRUC):
		return "RUC must be 11 numeric digits"
	case errors.Is(err, lookup.ErrCompanyNotFound):
		return "Company not found in registry"
	case errors.Is(err, lookup.ErrLookupFailed):
		return "Company registry unavailable"
	case errors.Is(err, store.ErrPriceNotFound):
		return "No price stored for this commodity"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, service.ErrPriceStoreUnavailable):
		return "Price storage unavailable"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError converts validator errors into a short
// user-friendly message without echoing request contents.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}
	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gt", "gte":
		return "value too small"
	case "lt", "lte":
		return "value too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
