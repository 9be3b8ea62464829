package model

// Event is one calendar entry shown to the user.
// Start and End keep the provider's ISO 8601 text; formatting happens at render time.
type Event struct {
	ID       string `json:"id,omitempty"`
	Subject  string `json:"subject"`
	Start    string `json:"start"`
	End      string `json:"end"`
	TimeZone string `json:"time_zone,omitempty"`
	AllDay   bool   `json:"all_day,omitempty"`
	WebLink  string `json:"web_link,omitempty"`
}
