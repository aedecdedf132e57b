package domain

import (
	"errors"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "fridge_session"
	SessionLocal  = "session_id"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedEndSession     = "failed to end session"
	MessageSuccessEndSession    = "session ended successfully"

	ErrSessionNotFound = errors.New("session not found")
)

type (
	SessionResponse struct {
		SessionID string `json:"session_id"`
	}
)
