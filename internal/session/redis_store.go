package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-assist-server/internal/clients/redis"
	"voice-assist-server/internal/observability"

	"github.com/google/uuid"
)

const (
	sessionKeyPrefix = "session:"
	lockKeyPrefix    = "lock:session:"

	// lockAcquireTimeout bounds how long AppendTurn waits for the per-session
	// lock before giving up the append.
	lockAcquireTimeout = 5 * time.Second

	// lockLease is the lock's own expiry, so a crashed holder cannot
	// deadlock future appends.
	lockLease = 10 * time.Second

	lockRetryInterval = 50 * time.Millisecond

	scanBatchSize = 100
)

// releaseScript deletes the lock only when the caller still holds it.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// RedisStore keeps one hash per call at session:{sid} with a rolling TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *observability.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func sessionKey(callSID string) string {
	return sessionKeyPrefix + callSID
}

func (s *RedisStore) Create(ctx context.Context, sess Session) error {
	key := sessionKey(sess.CallSID)

	exists, err := s.client.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists > 0 {
		return ErrSessionExists
	}

	if sess.History == nil {
		sess.History = []Turn{}
	}
	fields, err := encodeFields(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl); err != nil {
		return fmt.Errorf("failed to set session TTL: %w", err)
	}

	s.logger.Info(ctx, "created session",
		observability.Field{Key: "call_sid", Value: sess.CallSID},
	)
	return nil
}

func (s *RedisStore) Get(ctx context.Context, callSID string) (Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(callSID))
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	if len(fields) == 0 {
		return Session{}, ErrSessionNotFound
	}

	sess, historyOK := decodeSession(callSID, fields)
	if !historyOK {
		// Degrade to an empty history rather than failing the call.
		s.logger.Warn(ctx, fmt.Sprintf("failed to decode conversation history for %s", callSID), nil)
	}
	return sess, nil
}

func (s *RedisStore) Update(ctx context.Context, callSID string, updates map[string]interface{}) error {
	key := sessionKey(callSID)

	exists, err := s.client.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}

	encoded, err := encodeUpdates(updates)
	if err != nil {
		return fmt.Errorf("failed to encode session updates: %w", err)
	}

	if err := s.client.HSet(ctx, key, encoded); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl); err != nil {
		return fmt.Errorf("failed to refresh session TTL: %w", err)
	}
	return nil
}

func (s *RedisStore) AppendTurn(ctx context.Context, callSID string, turn Turn) error {
	token, err := s.acquireLock(ctx, callSID)
	if err != nil {
		return err
	}
	defer s.releaseLock(ctx, callSID, token)

	key := sessionKey(callSID)
	fields, err := s.client.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if len(fields) == 0 {
		return ErrSessionNotFound
	}

	sess, historyOK := decodeSession(callSID, fields)
	if !historyOK {
		s.logger.Warn(ctx, fmt.Sprintf("failed to decode conversation history for %s", callSID), nil)
	}
	sess.History = append(sess.History, turn)

	updated, err := encodeFields(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.HSet(ctx, key, map[string]string{fieldHistory: updated[fieldHistory]}); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl); err != nil {
		return fmt.Errorf("failed to refresh session TTL: %w", err)
	}

	s.logger.Debug(ctx, fmt.Sprintf("appended turn to session %s, history length: %d", callSID, len(sess.History)))
	return nil
}

// acquireLock takes the per-session lease, retrying until the acquire bound.
func (s *RedisStore) acquireLock(ctx context.Context, callSID string) (string, error) {
	lockKey := lockKeyPrefix + callSID
	token := uuid.New().String()
	deadline := time.Now().Add(lockAcquireTimeout)

	for {
		ok, err := s.client.SetNX(ctx, lockKey, token, lockLease)
		if err != nil {
			return "", fmt.Errorf("failed to acquire session lock: %w", err)
		}
		if ok {
			return token, nil
		}
		if time.Now().After(deadline) {
			return "", ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

func (s *RedisStore) releaseLock(ctx context.Context, callSID, token string) {
	if _, err := s.client.Eval(ctx, releaseScript, []string{lockKeyPrefix + callSID}, token); err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("failed to release session lock for %s", callSID), err)
	}
}

func (s *RedisStore) Delete(ctx context.Context, callSID string) error {
	removed, err := s.client.Del(ctx, sessionKey(callSID))
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if removed > 0 {
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

func (s *RedisStore) Exists(ctx context.Context, callSID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(callSID))
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) List(ctx context.Context) (map[string]Session, error) {
	sessions := make(map[string]Session)
	var cursor uint64

	for {
		keys, next, err := s.client.Scan(ctx, cursor, sessionKeyPrefix+"*", scanBatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sessions: %w", err)
		}

		for _, key := range keys {
			callSID := strings.TrimPrefix(key, sessionKeyPrefix)
			sess, err := s.Get(ctx, callSID)
			if err != nil {
				// Key may have expired between scan and read.
				continue
			}
			sessions[callSID] = sess
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return sessions, nil
}

func (s *RedisStore) Healthy(ctx context.Context) error {
	return s.client.Ping(ctx)
}
