package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vigilops/vigil/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP error responses.
func respondServiceError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	c.JSON(status, gin.H{"error": message})
}

func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrEmergencyStopActive) {
		return http.StatusConflict, "emergency stop active: approvals are frozen"
	}
	if errors.Is(err, services.ErrAlreadyDecided) {
		return http.StatusConflict, "approval already decided"
	}
	if errors.Is(err, services.ErrIncidentTerminal) {
		return http.StatusConflict, "incident is in a terminal state"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return http.StatusBadRequest, err.Error()
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return http.StatusConflict, "resource was modified concurrently"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}
