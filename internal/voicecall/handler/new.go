package handler

import (
	"context"

	"voice-assist-server/internal/config"
	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/session"
	"voice-assist-server/internal/voicecall/processor"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=new.go -destination=mocks_test.go -package=handler

// Processor is the call orchestration surface the HTTP layer drives.
type Processor interface {
	StartCall(ctx context.Context, in processor.StartCallInput) (processor.CallInfo, error)
	ProcessTurn(ctx context.Context, in processor.TurnInput) processor.TurnResult
	HandleCallStatus(ctx context.Context, in processor.CallStatusInput)
	InterruptCall(ctx context.Context, callSID, twimlStr string) error
	ListSessions(ctx context.Context) (map[string]session.Session, error)
	GetSession(ctx context.Context, callSID string) (session.Session, error)
	Health(ctx context.Context) processor.HealthReport
}

type Handler struct {
	processor Processor
	cfg       config.Config
	logger    *observability.Logger
}

func New(p Processor, cfg config.Config, logger *observability.Logger) *Handler {
	return &Handler{processor: p, cfg: cfg, logger: logger}
}
