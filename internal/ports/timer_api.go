package ports

import (
	"context"

	"github.com/mcarrasqub/itimer/internal/domain"
)

type StatusSource interface {
	FetchStatus(ctx context.Context, sessionID string) (domain.SessionStatus, error)
}

type TickReporter interface {
	ReportTick(ctx context.Context, sessionID string, secondsPassed int, csrfToken string) (domain.TickReply, error)
}

// TokenSource yields the anti-forgery token sent with writes. An empty
// string means no token is known.
type TokenSource interface {
	CSRFToken() string
}
