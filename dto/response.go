package dto

import "errors"

// Custom errors
var (
	ErrNoTextExtracted = errors.New("could not extract text from file")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrEmptyFilename   = errors.New("empty filename")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse acknowledges a logged event
type StatusResponse struct {
	Status string `json:"status"`
}

// ActionPlanResponse is the dispute script bundle shown next to a decoded bill
type ActionPlanResponse struct {
	PhoneScript   string   `json:"phone_script"`
	EmailTemplate string   `json:"email_template"`
	Checklist     []string `json:"checklist"`
}
