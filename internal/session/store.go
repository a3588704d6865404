package session

import "context"

// Store is the durable, TTL-bounded keeper of per-call conversation state.
//
// Implementations must refresh the expiry window on every state-changing
// operation and treat records past their TTL as absent. AppendTurn is the
// single serialization point for concurrent history writes on the same call:
// it must never let two appends overwrite each other.
type Store interface {
	// Create registers a new session. It fails with ErrSessionExists when a
	// live record already holds the id; callers must Delete first.
	Create(ctx context.Context, s Session) error

	// Get returns the fully decoded session or ErrSessionNotFound.
	Get(ctx context.Context, callSID string) (Session, error)

	// Update merges partial fields into the record and refreshes the TTL.
	Update(ctx context.Context, callSID string, updates map[string]interface{}) error

	// AppendTurn atomically appends a turn to the conversation history under
	// a per-session lock. Fails with ErrLockTimeout when the lock cannot be
	// acquired within the bound.
	AppendTurn(ctx context.Context, callSID string, turn Turn) error

	// Delete removes the session. Idempotent; deleting an absent id is not
	// an error.
	Delete(ctx context.Context, callSID string) error

	// Exists reports whether a live record holds the id.
	Exists(ctx context.Context, callSID string) (bool, error)

	// List returns all live sessions keyed by call id. Implementations scan
	// the key space with a cursor rather than a blocking full listing.
	List(ctx context.Context) (map[string]Session, error)

	// Healthy reports store connectivity.
	Healthy(ctx context.Context) error
}
