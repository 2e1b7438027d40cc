package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/models"
)

func signHex(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidSignatureBareHex(t *testing.T) {
	secret := "shh"
	body := []byte(`{"Type":"Notification"}`)
	sig := signHex(secret, body)

	assert.True(t, validSignature(secret, body, sig, false))
	assert.True(t, validSignature(secret, body, "  "+sig+"  ", false), "surrounding whitespace is tolerated")
	assert.False(t, validSignature(secret, body, sig, true), "bare hex does not satisfy the prefixed form")
	assert.False(t, validSignature(secret, []byte("tampered"), sig, false))
	assert.False(t, validSignature("wrong-secret", body, sig, false))
	assert.False(t, validSignature(secret, body, "", false))
}

func TestValidSignaturePrefixed(t *testing.T) {
	secret := "shh"
	body := []byte(`{"event":{}}`)
	sig := signHex(secret, body)

	assert.True(t, validSignature(secret, body, "v1="+sig, true))
	assert.False(t, validSignature(secret, body, "v1=deadbeef", true))
	assert.False(t, validSignature(secret, body, "", true))
}

func TestValidSignatureSecretRotation(t *testing.T) {
	secret := "current"
	body := []byte(`{"event":{}}`)
	stale := signHex("retired", body)
	current := signHex(secret, body)

	header := "v1=" + stale + ",v1=" + current
	assert.True(t, validSignature(secret, body, header, true),
		"any one v1 entry matching accepts the request")

	header = "v1=" + stale + ", v1=" + signHex("also-retired", body)
	assert.False(t, validSignature(secret, body, header, true))
}

func TestPagerDutySeverity(t *testing.T) {
	tests := []struct {
		priority string
		urgency  string
		want     models.Severity
	}{
		{"P1", "", models.SeverityCritical},
		{"p1", "low", models.SeverityCritical},
		{"P2", "", models.SeverityHigh},
		{"P3", "high", models.SeverityMedium},
		{"P4", "", models.SeverityLow},
		{"P5", "", models.SeverityLow},
		{"", "high", models.SeverityHigh},
		{"", "low", models.SeverityMedium},
		{"", "", models.SeverityMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pagerDutySeverity(tt.priority, tt.urgency),
			"priority=%q urgency=%q", tt.priority, tt.urgency)
	}
}

func TestCloudWatchSeverity(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        models.Severity
	}{
		{"payments-api-5xx [critical]", "", models.SeverityCritical},
		{"disk-usage", "severity=low, rotate logs", models.SeverityLow},
		{"cpu-high-checkout", "", models.SeverityHigh},
		{"plain-alarm", "no tag anywhere", models.SeverityHigh},
		{"MEDIUM-queue-depth", "", models.SeverityMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cloudWatchSeverity(tt.name, tt.description), tt.name)
	}
}

func TestCloudWatchAlarmServiceName(t *testing.T) {
	alarm := cloudWatchAlarm{AlarmName: "cpu-high"}
	alarm.Trigger.Namespace = "AWS/ECS"
	alarm.Trigger.Dimensions = []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}{
		{Name: "ClusterName", Value: "prod"},
		{Name: "ServiceName", Value: "checkout"},
	}
	assert.Equal(t, "checkout", alarm.serviceName())

	alarm.Trigger.Dimensions = nil
	assert.Equal(t, "AWS/ECS", alarm.serviceName())

	alarm.Trigger.Namespace = ""
	assert.Equal(t, "cpu-high", alarm.serviceName())
}

func TestSourceFromPath(t *testing.T) {
	assert.Equal(t, "pagerduty", sourceFromPath("/webhook/pagerduty"))
	assert.Equal(t, "cloudwatch", sourceFromPath("/webhook/cloudwatch"))
}
