package out

import (
	"context"

	"studytimer/internal/modules/timer/domain"
)

// SessionStore holds at most one paused session. Load reports found=false
// for an empty slot; an undecodable entry is found=true with an error.
type SessionStore interface {
	Load(ctx context.Context) (session domain.PersistedSession, found bool, err error)
	Save(ctx context.Context, session domain.PersistedSession) error
	Clear(ctx context.Context) error
}

// Alarm is fire-and-forget; implementations swallow their own errors.
type Alarm interface {
	Play()
}
