package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/models"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyIncidentOpened is no-op", func(t *testing.T) {
		result := s.NotifyIncidentOpened(context.Background(), IncidentOpenedInput{
			IncidentID: "inc-1",
		})
		assert.Empty(t, result)
	})

	t.Run("NotifyApprovalRequested is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyApprovalRequested(context.Background(), ApprovalRequestedInput{
			IncidentID: "inc-1",
			ApprovalID: "apr-1",
		})
	})

	t.Run("NotifyIncidentFinalized is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyIncidentFinalized(context.Background(), IncidentFinalizedInput{
			IncidentID: "inc-1",
			Outcome:    models.StateResolved,
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

func TestThreadMarker(t *testing.T) {
	assert.Equal(t, "incident inc-42", threadMarker("inc-42"))
}
