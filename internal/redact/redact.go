// Package redact scrubs credentials from strings before they reach logs or
// task error fields. Executor failures often carry collaborator detail: a
// Postgres DSN, the Gemini API key inside a request dump, or the bearer
// token sent to the RUC registry. Task errors are client-visible, so they
// are scrubbed before being stored.
package redact

import "regexp"

const (
	credentialPlaceholder = "[REDACTED_CREDENTIAL]"
	keyPlaceholder        = "[REDACTED_KEY]"
	tokenPlaceholder      = "[REDACTED_TOKEN]"
)

var (
	// user:password@ portions of connection URLs (postgres://..., https://...).
	dsnCredRegex = regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*)://[^@/\s]+@`)

	// Bearer tokens in Authorization headers or error dumps.
	bearerRegex = regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/]{8,}=*`)

	// key=value / key: value style secrets.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|apikey|token|secret|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	replacements = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{dsnCredRegex, "$1://" + credentialPlaceholder + "@"},
		{bearerRegex, "Bearer " + tokenPlaceholder},
		{apiKeyRegex, "$1$2" + keyPlaceholder},
	}
)

// String replaces credential-shaped substrings with placeholders.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts an error's message; nil yields the empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
