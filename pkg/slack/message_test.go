package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

func TestBuildOpenedMessage(t *testing.T) {
	input := IncidentOpenedInput{
		IncidentID: "inc-123",
		Service:    "payment-service",
		Title:      "OOMKilled on payment-service pods",
		Severity:   models.SeverityHigh,
		Source:     models.AlertSourceCloudWatch,
	}
	blocks := BuildOpenedMessage(input, "https://vigil.example.com")

	require.Len(t, blocks, 1)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":red_circle:")
	assert.Contains(t, section.Text.Text, "incident inc-123")
	assert.Contains(t, section.Text.Text, "payment-service")
	assert.Contains(t, section.Text.Text, "https://vigil.example.com/incidents/inc-123")
}

func TestBuildOpenedMessage_UnknownSeverity(t *testing.T) {
	blocks := BuildOpenedMessage(IncidentOpenedInput{IncidentID: "inc-1"}, "https://d.example.com")

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":bell:")
}

func TestBuildApprovalMessage(t *testing.T) {
	input := ApprovalRequestedInput{
		IncidentID:     "inc-5",
		ApprovalID:     "apr-1",
		CommandPreview: "kubectl scale deployment payment-service --replicas=5 -n prod",
		RiskLevel:      models.RiskMedium,
		Confidence:     0.85,
	}
	blocks := BuildApprovalMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 2)

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, "Approval required")
	assert.Contains(t, section.Text.Text, "medium risk")
	assert.Contains(t, section.Text.Text, "0.85")
	assert.Contains(t, section.Text.Text, "kubectl scale deployment payment-service")

	action := blocks[1].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "Review in Dashboard", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/incidents/inc-5")
}

func TestBuildTerminalMessage_Resolved(t *testing.T) {
	input := IncidentFinalizedInput{
		IncidentID: "inc-7",
		Outcome:    models.StateResolved,
		Reason:     models.ReasonRemediationVerified,
		RootCause:  "Memory limit too low for current traffic.",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Incident Resolved")
	assert.Contains(t, header.Text.Text, "remediation_verified")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "Memory limit too low")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Audit Trail", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/incidents/inc-7")
}

func TestBuildTerminalMessage_Failed(t *testing.T) {
	input := IncidentFinalizedInput{
		IncidentID:   "inc-8",
		Outcome:      models.StateFailed,
		Reason:       models.ReasonExecutionFailed,
		ErrorMessage: "verification failed: readyReplicas never reached 5",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Incident Failed")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "readyReplicas never reached 5")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Details", btn.Text.Text)
}

func TestBuildTerminalMessage_Abandoned(t *testing.T) {
	input := IncidentFinalizedInput{
		IncidentID: "inc-9",
		Outcome:    models.StateAbandoned,
		Reason:     models.ReasonAutoRecovered,
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 2)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":no_entry_sign:")
	assert.Contains(t, header.Text.Text, "Incident Abandoned")
	assert.Contains(t, header.Text.Text, "auto_recovered")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})
}
