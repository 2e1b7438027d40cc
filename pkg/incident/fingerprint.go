// Package incident holds the pure incident-domain rules: alert
// fingerprinting, the deduplication window, and the terminal disposition
// rule. Everything here is a pure function so the services and queue layers
// apply one shared set of rules instead of carrying private copies.
package incident

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/vigilops/vigil/pkg/models"
)

// fingerprintLength is the hex prefix length of the alert fingerprint.
const fingerprintLength = 16

var (
	// tokenWithDigit matches identifier tokens carrying at least one digit:
	// pod hash suffixes, replica counts, percentages, timestamps. They vary
	// between occurrences of the same underlying problem.
	tokenWithDigit = regexp.MustCompile(`[a-z0-9]*[0-9][a-z0-9]*`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Fingerprint derives the dedup identity of an alert: sha256 over source,
// service, and the normalized title, truncated to 16 hex characters. Two
// alerts about the same underlying problem fingerprint identically even when
// pod hashes or measurements in the title differ.
func Fingerprint(alert *models.Alert) string {
	sig := normalizeSignature(alert.Title)
	sum := sha256.Sum256([]byte(string(alert.Source) + "|" + alert.Service + "|" + sig))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}

// normalizeSignature lowercases the title and collapses every token that
// contains a digit, so generated names and measurements do not split one
// problem into many incidents.
func normalizeSignature(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = tokenWithDigit.ReplaceAllString(s, "*")
	return whitespaceRun.ReplaceAllString(s, " ")
}
