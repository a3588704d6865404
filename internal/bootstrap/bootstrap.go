package bootstrap

import (
	"context"
	"fmt"
	"time"

	"voice-assist-server/internal/auth"
	"voice-assist-server/internal/calllimit"
	geminiClient "voice-assist-server/internal/clients/gemini"
	redisClient "voice-assist-server/internal/clients/redis"
	twilioClient "voice-assist-server/internal/clients/twilio"
	"voice-assist-server/internal/config"
	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/rag"
	"voice-assist-server/internal/session"
	voiceCallHandler "voice-assist-server/internal/voicecall/handler"
	voiceCallProcessor "voice-assist-server/internal/voicecall/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Logger   *observability.Logger
	Sessions session.Store

	VoiceCallHandler *voiceCallHandler.Handler
	AuthGuard        *auth.Guard
	CallLimiter      *calllimit.Service

	redis     *redisClient.Client
	gemini    *geminiClient.Client
	knowledge *rag.KnowledgeStore
}

// staticAnswerer serves fixed replies when retrieval-augmented generation
// is switched off, keeping calls functional without any model backend.
type staticAnswerer struct{}

func (staticAnswerer) Answer(_ context.Context, _ string, _ []session.Turn, lang session.Language, _ int) string {
	if lang == session.LanguageHindi {
		return "मैं अभी आपके प्रश्न का उत्तर नहीं दे सकता। कृपया हमारे कार्यालय से संपर्क करें।"
	}
	return "I'm not able to answer questions right now. Please contact our office directly."
}

// Initialize wires every component from configuration. Redis being disabled
// swaps in the in-memory session store; RAG being disabled swaps in static
// replies and skips the knowledge database entirely.
func Initialize(ctx context.Context, cfg config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: logger}

	rdb, err := redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	deps.redis = rdb

	ttl := time.Duration(cfg.Redis.SessionTTL) * time.Second
	if cfg.Redis.Enabled {
		deps.Sessions = session.NewRedisStore(rdb, ttl, logger)
	} else {
		logger.Info(ctx, "redis disabled, using in-memory session store")
		deps.Sessions = session.NewMemoryStore(ttl, logger)
	}

	var answerer voiceCallProcessor.Answerer = staticAnswerer{}
	var knowledgeIndex voiceCallProcessor.KnowledgeIndex
	if cfg.RAG.Enabled {
		gem, err := geminiClient.NewClient(ctx, cfg.Gemini, logger)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini client: %w", err)
		}
		deps.gemini = gem

		knowledge, err := rag.NewKnowledgeStore(cfg.Knowledge.DatabaseURL, cfg.Knowledge.Table, gem, logger)
		if err != nil {
			return nil, fmt.Errorf("opening knowledge store: %w", err)
		}
		deps.knowledge = knowledge
		knowledgeIndex = knowledge

		var model rag.TextModel = gem
		if cfg.RAG.Provider == "openai" {
			model = rag.NewOpenAIModel(cfg.OpenAI)
		}
		answerer = rag.NewPipeline(knowledge, rag.NewGenerator(model, logger), logger)
	} else {
		logger.Info(ctx, "retrieval-augmented generation disabled, serving static replies")
	}

	dialer := twilioClient.NewClient(cfg.Twilio, logger)
	proc := voiceCallProcessor.NewVoiceCallProcessor(deps.Sessions, answerer, dialer, knowledgeIndex, cfg, logger)

	deps.VoiceCallHandler = voiceCallHandler.New(proc, cfg, logger)
	deps.AuthGuard = auth.NewGuard(cfg.Admin.JWTSecret, logger)
	deps.CallLimiter = calllimit.NewService(deps.Sessions, cfg.Limits.MaxConcurrentCalls, logger)

	return deps, nil
}

// Cleanup closes every held connection. Safe to call once at shutdown.
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.knowledge != nil {
		if err := d.knowledge.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close knowledge store", err)
		}
	}
	if d.gemini != nil {
		if err := d.gemini.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close gemini client", err)
		}
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
}
