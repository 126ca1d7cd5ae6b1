package domain

import "encoding/json"

// Result is the uniform envelope every backend call resolves to. Failures at
// any layer (transport, HTTP status, backend logic) terminate here; no error
// value ever crosses from the webhook client into a view.
type Result struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Meta    json.RawMessage `json:"meta,omitempty"`
}

// Failure builds the envelope's failure shape for a transport-level error.
func Failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// ErrorText returns the most specific failure text the envelope carries.
func (r Result) ErrorText() string {
	if r.Error != "" {
		return r.Error
	}
	if r.Message != "" {
		return r.Message
	}
	return "unknown error"
}

// DocumentList is the listDocuments result. Documents is never nil: a
// transport failure yields Success=false with an empty slice, and a
// non-array backend body yields Success=true with an empty slice.
type DocumentList struct {
	Success   bool
	Error     string
	Documents []Document
}
