package incident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/models"
)

func TestDuplicate(t *testing.T) {
	now := time.Now()

	t.Run("within window collapses", func(t *testing.T) {
		assert.True(t, Duplicate(models.StateAnalyzing, now.Add(-time.Minute), now, 5*time.Minute))
	})

	t.Run("outside window does not", func(t *testing.T) {
		assert.False(t, Duplicate(models.StateAnalyzing, now.Add(-6*time.Minute), now, 5*time.Minute))
	})

	t.Run("terminal incident never absorbs", func(t *testing.T) {
		for _, state := range []models.IncidentState{models.StateResolved, models.StateFailed, models.StateAbandoned} {
			assert.False(t, Duplicate(state, now.Add(-time.Second), now, 5*time.Minute), string(state))
		}
	})

	t.Run("zero window uses the default", func(t *testing.T) {
		assert.True(t, Duplicate(models.StateReceived, now.Add(-4*time.Minute), now, 0))
		assert.False(t, Duplicate(models.StateReceived, now.Add(-6*time.Minute), now, 0))
	})
}
