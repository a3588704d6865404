package processor

import (
	"context"
	"errors"
	"time"

	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/session"
)

const sessionErrorReply = "I'm sorry, I encountered an error. Please try again."

// TurnInput carries one round of speech recognition results.
type TurnInput struct {
	CallSID      string
	Utterance    string
	Confidence   float64
	RecordingURL string
	RecordingSID string
}

// TurnResult is what the caller should hear next.
type TurnResult struct {
	Reply    string
	Language session.Language
	EndCall  bool
}

// ProcessTurn runs one conversational turn: detect the caller's language,
// persist the user turn, short-circuit on exit intent, otherwise answer
// from the knowledge base, and persist the reply. It never returns an
// error; every failure path degrades to a speakable reply.
func (v *VoiceCallProcessor) ProcessTurn(ctx context.Context, in TurnInput) TurnResult {
	sess, err := v.sessions.Get(ctx, in.CallSID)
	storeOK := err == nil
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			v.logger.Info(ctx, "turn for unknown session",
				observability.Field{Key: "call_sid", Value: in.CallSID})
			return TurnResult{Reply: sessionErrorReply, Language: session.LanguageEnglish, EndCall: true}
		}
		// Store outage: answer statelessly rather than dropping the call.
		v.logger.Error(ctx, "session load failed, answering without history", err)
		sess = session.Session{CallSID: in.CallSID, Language: session.LanguageEnglish}
	}

	lang := DetectLanguage(in.Utterance)
	if storeOK && lang != sess.Language {
		if uerr := v.sessions.Update(ctx, in.CallSID, map[string]interface{}{
			session.FieldLanguage: string(lang),
		}); uerr != nil {
			v.logger.Warn(ctx, "language update failed", uerr)
		}
	}

	userTurn := session.Turn{
		Role:         session.RoleUser,
		Content:      in.Utterance,
		Timestamp:    time.Now().UTC(),
		Confidence:   in.Confidence,
		RecordingURL: in.RecordingURL,
		RecordingSID: in.RecordingSID,
	}
	if storeOK {
		v.appendTurn(ctx, in.CallSID, userTurn)
	}
	history := append(sess.History, userTurn)

	if isExitIntent(in.Utterance) {
		reply := closingLine(lang)
		if storeOK {
			v.appendTurn(ctx, in.CallSID, session.Turn{
				Role:      session.RoleAssistant,
				Content:   reply,
				Timestamp: time.Now().UTC(),
			})
		}
		v.logger.Info(ctx, "exit intent detected, ending call",
			observability.Field{Key: "call_sid", Value: in.CallSID},
			observability.Field{Key: "language", Value: string(lang)})
		return TurnResult{Reply: reply, Language: lang, EndCall: true}
	}

	reply := v.answerer.Answer(ctx, in.Utterance, history, lang, v.cfg.RAG.TopK)

	if storeOK {
		v.appendTurn(ctx, in.CallSID, session.Turn{
			Role:      session.RoleAssistant,
			Content:   reply,
			Timestamp: time.Now().UTC(),
		})
	}
	return TurnResult{Reply: reply, Language: lang}
}

// appendTurn persists a turn, tolerating lock contention and races with
// call teardown. The caller already has the reply in hand, so a lost
// append costs history, not the conversation.
func (v *VoiceCallProcessor) appendTurn(ctx context.Context, callSID string, turn session.Turn) {
	err := v.sessions.AppendTurn(ctx, callSID, turn)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrLockTimeout):
		v.logger.Warn(ctx, "append abandoned, session lock busy", err)
	case errors.Is(err, session.ErrSessionNotFound):
		v.logger.Info(ctx, "append skipped, session gone",
			observability.Field{Key: "call_sid", Value: callSID})
	default:
		v.logger.Error(ctx, "append turn failed", err)
	}
}
