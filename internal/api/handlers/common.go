package handlers

// ErrorResponse is the standard error payload returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Version is set via ldflags at build time
var Version = "dev"
