package dto

// ErrorResponse is the uniform error body. For answer validation failures
// Question carries the offending question id so clients can render the
// message next to it.
type ErrorResponse struct {
	Message  string   `json:"message"`
	Question uint     `json:"question,omitempty"`
	Details  []string `json:"details,omitempty"`
}
