package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/vigilops/vigil/pkg/models"
)

const maxBlockTextLength = 2900

var severityEmoji = map[models.Severity]string{
	models.SeverityCritical: ":rotating_light:",
	models.SeverityHigh:     ":red_circle:",
	models.SeverityMedium:   ":large_orange_circle:",
	models.SeverityLow:      ":large_yellow_circle:",
}

var outcomeEmoji = map[models.IncidentState]string{
	models.StateResolved:  ":white_check_mark:",
	models.StateFailed:    ":x:",
	models.StateAbandoned: ":no_entry_sign:",
}

var outcomeLabel = map[models.IncidentState]string{
	models.StateResolved:  "Incident Resolved",
	models.StateFailed:    "Incident Failed",
	models.StateAbandoned: "Incident Abandoned",
}

func incidentURL(incidentID, dashboardURL string) string {
	return fmt.Sprintf("%s/incidents/%s", dashboardURL, incidentID)
}

// threadMarker is the text that anchors an incident's thread: the opened
// message carries it, FindThread searches for it.
func threadMarker(incidentID string) string {
	return fmt.Sprintf("incident %s", incidentID)
}

// BuildOpenedMessage creates Block Kit blocks for an incident-opened
// notification.
func BuildOpenedMessage(input IncidentOpenedInput, dashboardURL string) []goslack.Block {
	emoji := severityEmoji[input.Severity]
	if emoji == "" {
		emoji = ":bell:"
	}
	url := incidentURL(input.IncidentID, dashboardURL)
	text := fmt.Sprintf("%s *New %s %s alert* — responding to %s.\n%s\n<%s|View in Dashboard>",
		emoji, input.Severity, input.Source, threadMarker(input.IncidentID),
		truncateForSlack(fmt.Sprintf("`%s`: %s", input.Service, input.Title)), url)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildApprovalMessage creates Block Kit blocks for an approval callout.
func BuildApprovalMessage(input ApprovalRequestedInput, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":raised_hand: *Approval required* (%s risk, confidence %.2f)\n```%s```",
		input.RiskLevel, input.Confidence, truncateForSlack(input.CommandPreview))

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	url := incidentURL(input.IncidentID, dashboardURL)
	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "Review in Dashboard", false, false))
	btn.URL = url
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildTerminalMessage creates Block Kit blocks for a terminal incident
// notification.
func BuildTerminalMessage(input IncidentFinalizedInput, dashboardURL string) []goslack.Block {
	emoji := outcomeEmoji[input.Outcome]
	if emoji == "" {
		emoji = ":question:"
	}
	label := outcomeLabel[input.Outcome]
	if label == "" {
		label = "Incident " + string(input.Outcome)
	}

	headerText := fmt.Sprintf("%s *%s* (%s)", emoji, label, input.Reason)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	switch {
	case input.Outcome == models.StateResolved && input.RootCause != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType,
				"*Root cause:*\n"+truncateForSlack(input.RootCause), false, false),
			nil, nil,
		))
	case input.ErrorMessage != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType,
				"*Error:*\n"+truncateForSlack(input.ErrorMessage), false, false),
			nil, nil,
		))
	}

	url := incidentURL(input.IncidentID, dashboardURL)
	buttonText := "View Audit Trail"
	if input.Outcome != models.StateResolved {
		buttonText = "View Details"
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = url
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — full record in dashboard)_"
}
