package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a new health service. db may be nil when running on
// in-memory storage.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns a simple health payload, including database reachability
// when a database is configured.
func (s *Service) Status(ctx context.Context) map[string]bool {
	out := map[string]bool{"ok": true}
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		out["db"] = s.db.PingContext(pingCtx) == nil
	}
	return out
}
