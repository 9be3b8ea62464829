package session

import "context"

//go:generate mockery --name Store
type Store interface {
	// Get returns the session stored under id. Expired or unknown ids report false.
	Get(ctx context.Context, id string) (Session, bool)
	// Set stores s under id, restarting its TTL.
	Set(ctx context.Context, id string, s Session)
	// Delete removes the session. Unknown ids are ignored.
	Delete(ctx context.Context, id string)
}
