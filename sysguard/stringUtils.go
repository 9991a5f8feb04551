package sysguard

import "strings"

// FormatLinesForLog flattens a possibly multi-line string into a single log
// line. A trailing newline is dropped and remaining newlines are rendered as
// " / " so the original line structure stays readable.
func FormatLinesForLog(s string) string {
	flat := strings.TrimSuffix(s, "\n")

	return strings.ReplaceAll(flat, "\n", " / ")
}
