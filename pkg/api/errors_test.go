package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", services.NewValidationError("mode", "unknown"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get incident: %w", services.ErrNotFound), http.StatusNotFound},
		{"emergency stop", services.ErrEmergencyStopActive, http.StatusConflict},
		{"already decided", services.ErrAlreadyDecided, http.StatusConflict},
		{"incident terminal", services.ErrIncidentTerminal, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"invalid input", fmt.Errorf("%w: illegal transition", services.ErrInvalidInput), http.StatusBadRequest},
		{"concurrent modification", services.ErrConcurrentModification, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapServiceError(tt.err)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, message)
		})
	}
}

func TestMapServiceErrorHidesInternals(t *testing.T) {
	status, message := mapServiceError(errors.New("pq: connection refused at 10.0.0.3"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", message)
}
