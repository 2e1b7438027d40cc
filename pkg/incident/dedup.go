package incident

import (
	"time"

	"github.com/vigilops/vigil/pkg/models"
)

// DefaultDedupWindow is how long a fingerprint keeps collapsing repeat
// alerts into the same incident.
const DefaultDedupWindow = 5 * time.Minute

// Duplicate reports whether a new alert should collapse into an existing
// incident with the same fingerprint: the incident must be non-terminal and
// the alert must arrive within the window of the incident's last alert. A
// terminal incident never absorbs alerts; the problem came back, so a fresh
// incident runs the pipeline again.
func Duplicate(state models.IncidentState, lastSeen, arrivedAt time.Time, window time.Duration) bool {
	if state.IsTerminal() {
		return false
	}
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return arrivedAt.Sub(lastSeen) < window
}
