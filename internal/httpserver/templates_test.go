package httpserver

import "testing"

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2024-05-01T09:00:00.0000000", "2024-05-01 09:00"},
		{"2024-05-01T09:00:00", "2024-05-01 09:00"},
		{"2024-05-01T09:00:00Z", "2024-05-01 09:00"},
		{"2024-05-01T09:00:00+07:00", "2024-05-01 09:00"},
		{"2024-05-01", "2024-05-01 00:00"},
		{"tomorrow-ish", "tomorrow-ish"},
	}

	for _, tt := range tests {
		if got := formatDateTime(tt.in); got != tt.want {
			t.Errorf("formatDateTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"notStarted": "Notstarted",
		"high":       "High",
		"éLAN":       "Élan",
	}

	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
