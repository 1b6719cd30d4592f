package domain

import "strings"

const DefaultTotalTimeAllowedSeconds = 900

type SessionContext struct {
	SessionID               string
	TotalTimeAllowedSeconds int
}

// NewSessionContext applies the default time budget and rejects an empty
// session id with ErrNoSession.
func NewSessionContext(sessionID string, totalAllowedSeconds int) (SessionContext, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return SessionContext{}, ErrNoSession
	}
	if totalAllowedSeconds <= 0 {
		totalAllowedSeconds = DefaultTotalTimeAllowedSeconds
	}

	return SessionContext{SessionID: id, TotalTimeAllowedSeconds: totalAllowedSeconds}, nil
}
