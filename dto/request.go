package dto

import "encoding/json"

// WTPRequest is a willingness-to-pay answer from the demo page
type WTPRequest struct {
	Choice string `json:"choice"`
	Reason string `json:"reason"`
	UserID string `json:"user_id"`
}

// SessionEventRequest is a frontend analytics event. Extra may be any JSON value.
type SessionEventRequest struct {
	EventType string          `json:"event_type"`
	UserID    string          `json:"user_id"`
	Extra     json.RawMessage `json:"extra"`
}
