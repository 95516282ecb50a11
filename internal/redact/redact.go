// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Database errors routinely echo connection strings,
// credentials and user email addresses; this package strips them.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholders substituted for redacted values.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

var patterns = []struct {
	re          *regexp.Regexp
	placeholder string
}{
	// userinfo section of connection strings
	{regexp.MustCompile(`(?i)(postgres|postgresql)://[^@\s/]+@`), "$1://" + RedactedCredentialPlaceholder + "@"},
	// key=value passwords as found in libpq-style DSNs and driver messages
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd)(\s*[=:]\s*)['"]?[^'"&\s]+`), "$1$2" + RedactedCredentialPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// DatabaseURL masks the password of a connection URL while keeping the
// user, host and database name readable for diagnostics.
func DatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return String(raw)
	}

	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
