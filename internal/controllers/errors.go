package controllers

import (
	"errors"
	"net/http"

	"github.com/spendlog/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Validation errors. A missing required field is a client error, not a
// server fault.
var (
	errCategoryNameMissing = errors.New("the name field is required and must not be empty")
	errDescriptionMissing  = errors.New("the description field is required")
	errAmountMissing       = errors.New("the amount field is required")
	errDateMissing         = errors.New("the date field is required")
)
