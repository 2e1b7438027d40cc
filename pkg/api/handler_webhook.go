package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vigilops/vigil/pkg/models"
)

// Signature headers. PagerDuty sends "v1=<hex>" (possibly several,
// comma-separated, during secret rotation); the SNS-relay ingress uses a
// bare hex digest.
const (
	pagerDutySignatureHeader = "X-PagerDuty-Signature"
	webhookSignatureHeader   = "X-Webhook-Signature"
)

// pagerDutyWebhookHandler handles POST /webhook/pagerduty.
// Accepts PagerDuty v3 webhook payloads; only incident.triggered events
// open incidents, everything else is acknowledged and dropped.
func (s *Server) pagerDutyWebhookHandler(c *gin.Context) {
	body, ok := s.readSignedBody(c, pagerDutySignatureHeader, true)
	if !ok {
		return
	}

	var envelope pagerDutyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON payload"})
		return
	}
	ev := envelope.Event
	if ev.Data.ID == "" || ev.Data.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload missing incident id or title"})
		return
	}
	if ev.EventType != "" && ev.EventType != "incident.triggered" {
		slog.Debug("Ignoring PagerDuty event", "event_type", ev.EventType, "id", ev.Data.ID)
		c.JSON(http.StatusAccepted, gin.H{"status": "ignored", "event_type": ev.EventType})
		return
	}

	var raw map[string]any
	_ = json.Unmarshal(body, &raw)

	alert := models.Alert{
		ID:          ev.Data.ID,
		Source:      models.AlertSourcePagerDuty,
		Severity:    pagerDutySeverity(ev.Data.Priority.Summary, ev.Data.Urgency),
		Title:       ev.Data.Title,
		Description: ev.Data.Description,
		Service:     ev.Data.Service.Summary,
		Timestamp:   ev.OccurredAt,
		Raw:         raw,
	}
	s.ingestAlert(c, alert)
}

// cloudWatchWebhookHandler handles POST /webhook/cloudwatch.
// Accepts SNS notification envelopes wrapping a CloudWatch alarm. Only the
// ALARM state opens incidents; OK and INSUFFICIENT_DATA are dropped.
func (s *Server) cloudWatchWebhookHandler(c *gin.Context) {
	body, ok := s.readSignedBody(c, webhookSignatureHeader, false)
	if !ok {
		return
	}

	var envelope snsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON payload"})
		return
	}

	// SNS subscription handshake: acknowledge so the operator can confirm
	// out of band, but never open an incident for it.
	if envelope.Type == "SubscriptionConfirmation" {
		slog.Info("SNS subscription confirmation received", "topic", envelope.TopicArn)
		c.JSON(http.StatusAccepted, gin.H{"status": "confirmation_pending"})
		return
	}

	var alarm cloudWatchAlarm
	if err := json.Unmarshal([]byte(envelope.Message), &alarm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed alarm message"})
		return
	}
	if alarm.AlarmName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alarm message missing AlarmName"})
		return
	}
	if alarm.NewStateValue != "ALARM" {
		slog.Debug("Ignoring CloudWatch state change", "alarm", alarm.AlarmName, "state", alarm.NewStateValue)
		c.JSON(http.StatusAccepted, gin.H{"status": "ignored", "state": alarm.NewStateValue})
		return
	}

	var raw map[string]any
	_ = json.Unmarshal([]byte(envelope.Message), &raw)

	alert := models.Alert{
		ID:          envelope.MessageID,
		Source:      models.AlertSourceCloudWatch,
		Severity:    cloudWatchSeverity(alarm.AlarmName, alarm.AlarmDescription),
		Title:       alarm.AlarmName,
		Description: alarm.NewStateReason,
		Service:     alarm.serviceName(),
		Timestamp:   alarm.StateChangeTime,
		Raw:         raw,
	}
	s.ingestAlert(c, alert)
}

// readSignedBody reads the raw request body and validates the HMAC
// signature when a secret is configured. Returns ok=false after writing
// the error response.
func (s *Server) readSignedBody(c *gin.Context, header string, prefixed bool) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil, false
	}

	if s.webhookSecret == "" {
		slog.Warn("Webhook accepted without signature check: no webhook secret configured",
			"path", c.Request.URL.Path)
		return body, true
	}

	presented := c.Request.Header.Get(header)
	if !validSignature(s.webhookSecret, body, presented, prefixed) {
		ingressRejected.WithLabelValues(sourceFromPath(c.Request.URL.Path), "bad_signature").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook signature"})
		return nil, false
	}
	return body, true
}

// validSignature checks an HMAC-SHA256 hex signature. With prefixed=true
// the header carries one or more "v1=<hex>" entries (PagerDuty form), any
// one of which may match — secrets rotate.
func validSignature(secret string, body []byte, presented string, prefixed bool) bool {
	if presented == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !prefixed {
		return hmac.Equal([]byte(strings.TrimSpace(presented)), []byte(expected))
	}
	for _, part := range strings.Split(presented, ",") {
		sig := strings.TrimPrefix(strings.TrimSpace(part), "v1=")
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return true
		}
	}
	return false
}

// pagerDutyEnvelope is the subset of the PagerDuty v3 webhook payload the
// ingress reads.
type pagerDutyEnvelope struct {
	Event struct {
		ID         string    `json:"id"`
		EventType  string    `json:"event_type"`
		OccurredAt time.Time `json:"occurred_at"`
		Data       struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Urgency     string `json:"urgency"`
			Priority    struct {
				Summary string `json:"summary"`
			} `json:"priority"`
			Service struct {
				Summary string `json:"summary"`
			} `json:"service"`
		} `json:"data"`
	} `json:"event"`
}

// snsEnvelope is the SNS notification wrapper around a CloudWatch alarm.
type snsEnvelope struct {
	Type      string `json:"Type"`
	MessageID string `json:"MessageId"`
	TopicArn  string `json:"TopicArn"`
	Message   string `json:"Message"`
	Timestamp string `json:"Timestamp"`
}

// cloudWatchAlarm is the subset of a CloudWatch alarm state-change message
// the ingress reads.
type cloudWatchAlarm struct {
	AlarmName        string    `json:"AlarmName"`
	AlarmDescription string    `json:"AlarmDescription"`
	NewStateValue    string    `json:"NewStateValue"`
	NewStateReason   string    `json:"NewStateReason"`
	StateChangeTime  time.Time `json:"StateChangeTime"`
	Trigger          struct {
		Namespace  string `json:"Namespace"`
		Dimensions []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"Dimensions"`
	} `json:"Trigger"`
}

// serviceName derives the owning service from the alarm's dimensions,
// falling back to the metric namespace.
func (a *cloudWatchAlarm) serviceName() string {
	for _, d := range a.Trigger.Dimensions {
		switch strings.ToLower(d.Name) {
		case "service", "servicename", "deployment", "app":
			return d.Value
		}
	}
	if a.Trigger.Namespace != "" {
		return a.Trigger.Namespace
	}
	return a.AlarmName
}

// pagerDutySeverity maps PagerDuty priority/urgency onto the severity enum.
func pagerDutySeverity(priority, urgency string) models.Severity {
	switch strings.ToUpper(priority) {
	case "P1":
		return models.SeverityCritical
	case "P2":
		return models.SeverityHigh
	case "P3":
		return models.SeverityMedium
	case "P4", "P5":
		return models.SeverityLow
	}
	if strings.EqualFold(urgency, "high") {
		return models.SeverityHigh
	}
	return models.SeverityMedium
}

// cloudWatchSeverity reads a severity tag out of the alarm name or
// description ("[critical]", "severity=high", ...). Alarms without one are
// high: something in the cluster is in ALARM state.
func cloudWatchSeverity(name, description string) models.Severity {
	haystack := strings.ToLower(name + " " + description)
	for _, sev := range []models.Severity{
		models.SeverityCritical,
		models.SeverityHigh,
		models.SeverityMedium,
		models.SeverityLow,
	} {
		if strings.Contains(haystack, string(sev)) {
			return sev
		}
	}
	return models.SeverityHigh
}

func sourceFromPath(path string) string {
	return strings.TrimPrefix(path, "/webhook/")
}
