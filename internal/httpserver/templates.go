package httpserver

import (
	"html/template"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"em-agent/pkg/response"
)

// isoLayouts are tried in order by formatDateTime. Graph sends up to seven
// fractional digits without a zone; Google sends RFC 3339 or a bare date.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"format_datetime": formatDateTime,
		"capitalize":      capitalize,
	}
}

// formatDateTime renders an ISO 8601 value as "2006-01-02 15:04".
// Values it cannot parse are returned unchanged.
func formatDateTime(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(response.DateTimeFormat)
		}
	}
	return value
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
