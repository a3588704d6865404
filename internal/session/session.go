package session

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

var (
	// ErrSessionExists is returned by Create when the call id already has a
	// live record. Retried call-placement webhooks must delete first; an
	// overwrite would silently discard conversation history.
	ErrSessionExists = errors.New("session already exists")

	// ErrSessionNotFound is returned when no live record exists for the id,
	// including records the TTL has already reaped.
	ErrSessionNotFound = errors.New("session not found")

	// ErrLockTimeout is returned when the per-session append lock could not
	// be acquired within the bound. The append is abandoned, never blocked
	// indefinitely.
	ErrLockTimeout = errors.New("session lock timeout")
)

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Language is the caller's current conversation language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// Turn is one utterance or reply in a conversation.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// User turns only.
	Confidence   float64 `json:"confidence,omitempty"`
	RecordingURL string  `json:"recording_url,omitempty"`
	RecordingSID string  `json:"recording_sid,omitempty"`
}

// Session is the per-call conversation state.
type Session struct {
	CallSID        string    `json:"call_sid"`
	To             string    `json:"to"`
	From           string    `json:"from"`
	StartedAt      time.Time `json:"started_at"`
	Language       Language  `json:"language"`
	InitialMessage string    `json:"initial_message,omitempty"`
	History        []Turn    `json:"conversation_history"`
}

// Hash field names of the persisted session record.
const (
	fieldTo             = "to"
	fieldFrom           = "from"
	fieldStartedAt      = "started_at"
	fieldLanguage       = "language"
	fieldInitialMessage = "initial_message"
	fieldHistory        = "conversation_history"
)

// encodeFields flattens a session into the stored hash representation.
func encodeFields(s Session) (map[string]string, error) {
	history, err := json.Marshal(s.History)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		fieldTo:        s.To,
		fieldFrom:      s.From,
		fieldStartedAt: s.StartedAt.Format(time.RFC3339Nano),
		fieldLanguage:  string(s.Language),
		fieldHistory:   string(history),
	}
	if s.InitialMessage != "" {
		fields[fieldInitialMessage] = s.InitialMessage
	}
	return fields, nil
}

// decodeSession rebuilds a session from its stored hash. A history field that
// fails to decode degrades to an empty history; it is never a fatal error.
func decodeSession(callSID string, fields map[string]string) (Session, bool) {
	s := Session{
		CallSID:        callSID,
		To:             fields[fieldTo],
		From:           fields[fieldFrom],
		Language:       Language(fields[fieldLanguage]),
		InitialMessage: fields[fieldInitialMessage],
		History:        []Turn{},
	}
	if s.Language == "" {
		s.Language = LanguageEnglish
	}

	if raw := fields[fieldStartedAt]; raw != "" {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			s.StartedAt = ts
		}
	}

	historyOK := true
	if raw := fields[fieldHistory]; raw != "" {
		var history []Turn
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			historyOK = false
		} else {
			s.History = history
		}
	}

	return s, historyOK
}

// encodeUpdates serializes a partial field update for the stored hash.
func encodeUpdates(updates map[string]interface{}) (map[string]string, error) {
	encoded := make(map[string]string, len(updates))
	for key, value := range updates {
		switch v := value.(type) {
		case string:
			encoded[key] = v
		case Language:
			encoded[key] = string(v)
		case float64:
			encoded[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			encoded[key] = strconv.Itoa(v)
		case time.Time:
			encoded[key] = v.Format(time.RFC3339Nano)
		default:
			bs, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			encoded[key] = string(bs)
		}
	}
	return encoded, nil
}

// FieldLanguage is the update key for persisting the detected language.
const FieldLanguage = fieldLanguage
