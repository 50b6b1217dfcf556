package ingest

import "strings"

// formulaTriggers are the characters spreadsheet software interprets as the
// start of a formula when they open a cell.
const formulaTriggers = "=+-@\t\r\n"

// Sanitize neutralizes spreadsheet formula injection. If the trimmed value
// starts with a formula trigger character it is prefixed with a single quote,
// which spreadsheet clients render as a literal string marker.
//
// Sanitize is idempotent: a value that already carries the guard quote in
// front of a trigger character is returned unchanged, so sanitizing on ingest
// and again on export never double-prefixes.
func Sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}

	// A previously sanitized value starts with the guard quote, which is not
	// a trigger, so re-applying Sanitize is a no-op.
	if strings.IndexByte(formulaTriggers, value[0]) >= 0 {
		return "'" + value
	}

	return value
}
