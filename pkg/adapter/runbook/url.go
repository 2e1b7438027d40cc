package runbook

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// githubPathPattern matches /{owner}/{repo}/{blob|tree}/{ref}/{path...}.
var githubPathPattern = regexp.MustCompile(`^/([^/]+)/([^/]+)/(blob|tree)/([^/]+)(?:/(.*))?$`)

// rawContentURL maps a github.com blob or tree URL onto its
// raw.githubusercontent.com equivalent. Anything else, including URLs that
// are already raw, passes through unchanged.
func rawContentURL(githubURL string) string {
	parsed, err := url.Parse(githubURL)
	if err != nil {
		return githubURL
	}
	if parsed.Host != "github.com" && parsed.Host != "www.github.com" {
		return githubURL
	}

	matches := githubPathPattern.FindStringSubmatch(parsed.Path)
	if matches == nil {
		return githubURL
	}

	owner, repo, ref, path := matches[1], matches[2], matches[4], matches[5]
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/refs/heads/%s/%s", owner, repo, ref, path)
}

// validateURL enforces the scheme and, when configured, the domain
// allowlist. An empty allowlist permits any http(s) host.
func validateURL(rawURL string, allowedDomains []string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}

	if len(allowedDomains) == 0 {
		return nil
	}

	host := strings.ToLower(parsed.Hostname())
	for _, domain := range allowedDomains {
		if host == domain || host == "www."+domain {
			return nil
		}
	}
	return fmt.Errorf("domain %q not in allowed list", host)
}
