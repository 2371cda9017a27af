package model

// RequestError defines the JSON envelope returned
// by every route on failure
type RequestError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
