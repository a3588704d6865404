package processor

import (
	"context"
	"time"

	"voice-assist-server/internal/clients/twilio"
	"voice-assist-server/internal/config"
	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/session"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=new.go -destination=mocks_test.go -package=processor

// SessionStore is the slice of the session store the processor needs.
type SessionStore interface {
	Create(ctx context.Context, sess session.Session) error
	Get(ctx context.Context, callSID string) (session.Session, error)
	Update(ctx context.Context, callSID string, fields map[string]interface{}) error
	AppendTurn(ctx context.Context, callSID string, turn session.Turn) error
	Delete(ctx context.Context, callSID string) error
	Exists(ctx context.Context, callSID string) (bool, error)
	List(ctx context.Context) (map[string]session.Session, error)
	Healthy(ctx context.Context) error
}

// Answerer produces a spoken reply for an utterance given the conversation so far.
type Answerer interface {
	Answer(ctx context.Context, query string, history []session.Turn, lang session.Language, topK int) string
}

// Dialer places and manipulates live calls.
type Dialer interface {
	CreateCall(ctx context.Context, to, from, voiceURL, statusCallbackURL string) (twilio.Call, error)
	UpdateCallTwiML(ctx context.Context, callSID, twimlStr string) error
	DefaultFrom() string
}

// KnowledgeIndex reports on the retrieval index, used for health checks.
type KnowledgeIndex interface {
	Count(ctx context.Context) (int, error)
}

type VoiceCallProcessor struct {
	sessions  SessionStore
	answerer  Answerer
	dialer    Dialer
	knowledge KnowledgeIndex
	cfg       config.Config
	logger    *observability.Logger
	startedAt time.Time
}

func NewVoiceCallProcessor(
	sessions SessionStore,
	answerer Answerer,
	dialer Dialer,
	knowledge KnowledgeIndex,
	cfg config.Config,
	logger *observability.Logger,
) *VoiceCallProcessor {
	return &VoiceCallProcessor{
		sessions:  sessions,
		answerer:  answerer,
		dialer:    dialer,
		knowledge: knowledge,
		cfg:       cfg,
		logger:    logger,
		startedAt: time.Now(),
	}
}
