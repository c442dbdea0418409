package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/middleware"
)

// apiError is the error half of the response envelope.
type apiError struct {
	Message string                     `json:"message"`
	Fields  []apperrors.FieldViolation `json:"fields,omitempty"`
}

// envelope is the uniform response shape every endpoint returns.
type envelope struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Error      *apiError       `json:"error,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

// errorDetailKey marks requests whose internal error detail may be exposed.
// It is set by registration only outside production.
const errorDetailKey = "exposeErrorDetail"

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

// respondList renders a page of items with the pagination block as an
// envelope sibling of data.
func respondList(c *gin.Context, items []any, total int64, page, limit int) {
	if items == nil {
		items = []any{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    items,
		Pagination: &dto.Pagination{
			Total:       total,
			TotalPages:  totalPages,
			CurrentPage: page,
			Limit:       limit,
		},
	})
}

// respondError maps an error to its HTTP status and renders the envelope.
// Validation errors carry their per-field detail; internal errors never leak
// their cause to the client.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	apiErr := apiError{Message: "Internal server error"}

	var validationErr *apperrors.ValidationError
	var duplicateErr *apperrors.DuplicateError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		apiErr = apiError{Message: "Validation failed", Fields: validationErr.Violations}
	case errors.As(err, &duplicateErr):
		status = http.StatusConflict
		apiErr = apiError{Message: duplicateErr.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		apiErr = apiError{Message: "Resource not found"}
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
		apiErr = apiError{Message: "Resource already exists"}
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidArgument):
		status = http.StatusBadRequest
		apiErr = apiError{Message: err.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		apiErr = apiError{Message: "Unauthorized"}
	default:
		middleware.GetLoggerFromContext(c).Error("request failed", slog.String("error", err.Error()))
		if c.GetBool(errorDetailKey) {
			apiErr.Message = "Internal server error: " + err.Error()
		}
	}

	c.JSON(status, envelope{Success: false, Error: &apiErr})
}
