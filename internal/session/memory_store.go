package session

import (
	"context"
	"sync"
	"time"

	"voice-assist-server/internal/observability"
)

// MemoryStore is the feature-flagged fallback when Redis is disabled. State
// is process-local and ephemeral, so it is only suitable for a single
// instance; expiry is enforced lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	logger  *observability.Logger

	// now is swappable for TTL tests.
	now func() time.Time
}

type memoryEntry struct {
	mu        sync.Mutex
	session   Session
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore(ttl time.Duration, logger *observability.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// live returns the entry for the id, reaping it when expired.
func (s *MemoryStore) live(callSID string) (*memoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[callSID]
	if !ok {
		return nil, false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, callSID)
		return nil, false
	}
	return entry, true
}

func (s *MemoryStore) Create(ctx context.Context, sess Session) error {
	if _, ok := s.live(sess.CallSID); ok {
		return ErrSessionExists
	}

	if sess.History == nil {
		sess.History = []Turn{}
	}

	s.mu.Lock()
	s.entries[sess.CallSID] = &memoryEntry{
		session:   sess,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	s.logger.Info(ctx, "created session",
		observability.Field{Key: "call_sid", Value: sess.CallSID},
	)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, callSID string) (Session, error) {
	entry, ok := s.live(callSID)
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Copy so callers cannot mutate stored history.
	sess := entry.session
	sess.History = append([]Turn(nil), entry.session.History...)
	return sess, nil
}

// Update merges scalar session fields and refreshes the TTL. Conversation
// history is append-only and mutates through AppendTurn, never here.
func (s *MemoryStore) Update(ctx context.Context, callSID string, updates map[string]interface{}) error {
	entry, ok := s.live(callSID)
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	for key, value := range updates {
		switch key {
		case fieldTo:
			if v, ok := value.(string); ok {
				entry.session.To = v
			}
		case fieldFrom:
			if v, ok := value.(string); ok {
				entry.session.From = v
			}
		case fieldStartedAt:
			switch v := value.(type) {
			case time.Time:
				entry.session.StartedAt = v
			case string:
				if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
					entry.session.StartedAt = ts
				}
			}
		case fieldLanguage:
			switch v := value.(type) {
			case Language:
				entry.session.Language = v
			case string:
				entry.session.Language = Language(v)
			}
		case fieldInitialMessage:
			if v, ok := value.(string); ok {
				entry.session.InitialMessage = v
			}
		}
	}
	entry.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) AppendTurn(ctx context.Context, callSID string, turn Turn) error {
	entry, ok := s.live(callSID)
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.History = append(entry.session.History, turn)
	entry.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, callSID string) error {
	s.mu.Lock()
	_, existed := s.entries[callSID]
	delete(s.entries, callSID)
	s.mu.Unlock()

	if existed {
		s.logger.Info(ctx, "deleted session",
			observability.Field{Key: "call_sid", Value: callSID},
		)
	} else {
		s.logger.Info(ctx, "session already absent on delete",
			observability.Field{Key: "call_sid", Value: callSID},
		)
	}
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, callSID string) (bool, error) {
	_, ok := s.live(callSID)
	return ok, nil
}

func (s *MemoryStore) List(ctx context.Context) (map[string]Session, error) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	sessions := make(map[string]Session, len(ids))
	for _, id := range ids {
		sess, err := s.Get(ctx, id)
		if err != nil {
			continue
		}
		sessions[id] = sess
	}
	return sessions, nil
}

func (s *MemoryStore) Healthy(ctx context.Context) error {
	return nil
}
