// Package redact strips sensitive information from strings before they are
// logged. Error messages can carry connection strings, credentials, tokens,
// email addresses, or raw SQL; everything that leaves the process through a
// log line goes through here first.
package redact

import "regexp"

// RedactionPlaceholder is the generic replacement for matched sensitive text.
const RedactionPlaceholder = "[REDACTED]"

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// Database connection strings with inline credentials
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), "[REDACTED_DSN]"},

	// Passwords and secrets in key=value or key: value form
	{regexp.MustCompile(`(?i)(password|passwd|secret|jwt_secret)([=:\s]['"]?)[^'"&\s]{3,}`), "[REDACTED_CREDENTIAL]"},

	// Bearer tokens in the standard three-part JWT shape
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},

	// SQL statement fragments surfaced by driver errors
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()]+(?:FROM|INTO|SET)(?:[\s\w,*()=$]+)?`), "[REDACTED_SQL]"},

	// Filesystem paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), "[REDACTED_PATH]"},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
// A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
