package models

// PasswordRequest carries a plaintext password in the body of
// set/validate/login requests.
type PasswordRequest struct {
	Password string `json:"password"`
}

// PasswordStateResponse reports the master password lifecycle state.
type PasswordStateResponse struct {
	State string `json:"state"`
}

// ValidationResponse is returned by the validate endpoint and on weak
// password rejections.
type ValidationResponse struct {
	Result string `json:"result"`
	Reason string `json:"reason,omitempty"`
	Hint   string `json:"hint,omitempty"`
}

// CreateNoteRequest is the body of POST /api/notes.
type CreateNoteRequest struct {
	Password string    `json:"password"`
	Note     NoteDraft `json:"note"`
}

// OpenNoteRequest is the body of POST /api/notes/{id}/open.
type OpenNoteRequest struct {
	Password string `json:"password"`
}

// ErrorResponse is the JSON body of every non-2xx daemon response.
type ErrorResponse struct {
	Error string `json:"error"`

	// RetryAfter is set in whole seconds for wrong-password and
	// rate-limited responses.
	RetryAfter int64 `json:"retry_after,omitempty"`
}

// VersionResponse is the body of GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// LockoutResponse is the body of GET /api/session/lockout.
type LockoutResponse struct {
	// RetryAfter is the remaining login lockout in whole seconds, 0 when a
	// login attempt is allowed right now.
	RetryAfter int64 `json:"retry_after"`
}
