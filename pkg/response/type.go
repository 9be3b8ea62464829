package response

const (
	MessageSuccess = "Success"

	// DateTimeFormat is how event and due times are shown to users.
	DateTimeFormat = "2006-01-02 15:04"
)

// Resp is the standard JSON response body for /api routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorBody is the flat body the browser script reads on failed page actions.
type ErrorBody struct {
	Error string `json:"error"`
}
