package incident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/models"
)

func alertWith(source models.AlertSource, service, title string) *models.Alert {
	return &models.Alert{Source: source, Service: service, Title: title}
}

func TestFingerprintStableAcrossGeneratedNames(t *testing.T) {
	a := Fingerprint(alertWith(models.AlertSourcePagerDuty, "payments", "Pod payments-7d9f8b5c4-xq2vl CrashLoopBackOff"))
	b := Fingerprint(alertWith(models.AlertSourcePagerDuty, "payments", "Pod payments-6c8e7a4b3-mn9pq CrashLoopBackOff"))

	assert.Equal(t, a, b)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), a)
}

func TestFingerprintSeparatesComponents(t *testing.T) {
	base := Fingerprint(alertWith(models.AlertSourcePagerDuty, "payments", "CrashLoopBackOff"))

	assert.NotEqual(t, base, Fingerprint(alertWith(models.AlertSourceCloudWatch, "payments", "CrashLoopBackOff")))
	assert.NotEqual(t, base, Fingerprint(alertWith(models.AlertSourcePagerDuty, "checkout", "CrashLoopBackOff")))
	assert.NotEqual(t, base, Fingerprint(alertWith(models.AlertSourcePagerDuty, "payments", "OOMKilled")))
}

func TestNormalizeSignature(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "pod hash suffixes collapse",
			title: "Pod payments-7d9f8b5c4-xq2vl CrashLoopBackOff",
			want:  "pod payments-*-* crashloopbackoff",
		},
		{
			name:  "measurements collapse",
			title: "Memory usage above 95% on api-6c8e7a4b3-ab1cd",
			want:  "memory usage above *% on api-*-*",
		},
		{
			name:  "status code tokens collapse",
			title: "5xx rate spike",
			want:  "* rate spike",
		},
		{
			name:  "whitespace runs collapse",
			title: "  High   latency \t detected ",
			want:  "high latency detected",
		},
		{
			name:  "digit free titles pass through",
			title: "Disk full on node",
			want:  "disk full on node",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSignature(tt.title))
		})
	}
}
