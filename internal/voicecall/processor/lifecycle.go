package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/session"
)

// Terminal call statuses from the telephony provider. Anything else means
// the call is still in flight and the session must be kept.
var terminalStatuses = map[string]bool{
	"completed": true,
	"failed":    true,
	"busy":      true,
	"no-answer": true,
	"canceled":  true,
}

type StartCallInput struct {
	To             string
	From           string
	InitialMessage string
}

type CallInfo struct {
	CallSID string
	Status  string
	To      string
	From    string
}

// StartCall places an outbound call and registers its session. The call is
// placed before the session is created so a provider rejection never leaves
// an orphaned session behind.
func (v *VoiceCallProcessor) StartCall(ctx context.Context, in StartCallInput) (CallInfo, error) {
	from := in.From
	if from == "" {
		from = v.dialer.DefaultFrom()
	}
	voiceURL := v.cfg.Server.PublicURL + "/voice/outbound"
	statusURL := v.cfg.Server.PublicURL + "/call-status"

	call, err := v.dialer.CreateCall(ctx, in.To, from, voiceURL, statusURL)
	if err != nil {
		return CallInfo{}, fmt.Errorf("placing call to %s: %w", in.To, err)
	}

	sess := session.Session{
		CallSID:        call.SID,
		To:             in.To,
		From:           from,
		StartedAt:      time.Now().UTC(),
		Language:       session.LanguageEnglish,
		InitialMessage: in.InitialMessage,
	}
	if err := v.sessions.Create(ctx, sess); err != nil {
		// Call is already ringing; record the failure and carry on. The
		// turn loop degrades to stateless answers for this call.
		v.logger.Error(ctx, "session create failed for placed call", err)
	}

	v.logger.Info(ctx, "outbound call placed",
		observability.Field{Key: "call_sid", Value: call.SID},
		observability.Field{Key: "to", Value: in.To})
	return CallInfo{CallSID: call.SID, Status: call.Status, To: in.To, From: from}, nil
}

type CallStatusInput struct {
	CallSID    string
	Status     string
	AnsweredBy string
}

// HandleCallStatus reacts to provider status callbacks. Terminal statuses
// tear the session down; everything else is logged and ignored.
func (v *VoiceCallProcessor) HandleCallStatus(ctx context.Context, in CallStatusInput) {
	if in.AnsweredBy == "machine_start" {
		v.logger.Info(ctx, "call answered by machine",
			observability.Field{Key: "call_sid", Value: in.CallSID})
	}
	if !terminalStatuses[in.Status] {
		v.logger.Debug(ctx, fmt.Sprintf("non-terminal call status %s for %s", in.Status, in.CallSID))
		return
	}

	turns := 0
	if sess, err := v.sessions.Get(ctx, in.CallSID); err == nil {
		turns = len(sess.History)
	}
	if err := v.sessions.Delete(ctx, in.CallSID); err != nil {
		v.logger.Error(ctx, "session delete failed", err)
	}
	v.logger.Info(ctx, "call ended",
		observability.Field{Key: "call_sid", Value: in.CallSID},
		observability.Field{Key: "status", Value: in.Status},
		observability.Field{Key: "turns", Value: turns})
}

// InterruptCall redirects a live call to the given markup, typically a
// short pause that cuts off whatever is being spoken.
func (v *VoiceCallProcessor) InterruptCall(ctx context.Context, callSID, twimlStr string) error {
	exists, err := v.sessions.Exists(ctx, callSID)
	if err != nil {
		return fmt.Errorf("checking session %s: %w", callSID, err)
	}
	if !exists {
		return session.ErrSessionNotFound
	}
	if err := v.dialer.UpdateCallTwiML(ctx, callSID, twimlStr); err != nil {
		return fmt.Errorf("interrupting call %s: %w", callSID, err)
	}
	v.logger.Info(ctx, "call interrupted",
		observability.Field{Key: "call_sid", Value: callSID})
	return nil
}

// ListSessions returns all live sessions keyed by call SID.
func (v *VoiceCallProcessor) ListSessions(ctx context.Context) (map[string]session.Session, error) {
	all, err := v.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return all, nil
}

// GetSession returns a single session for operator inspection.
func (v *VoiceCallProcessor) GetSession(ctx context.Context, callSID string) (session.Session, error) {
	sess, err := v.sessions.Get(ctx, callSID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return session.Session{}, err
		}
		return session.Session{}, fmt.Errorf("loading session %s: %w", callSID, err)
	}
	return sess, nil
}

type ComponentStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type HealthReport struct {
	Status     string                     `json:"status"`
	UptimeSecs int64                      `json:"uptime_seconds"`
	Components map[string]ComponentStatus `json:"components"`
}

// Health probes each dependency and reports the worst observed status.
// Disabled components report "disabled" without degrading the overall state.
func (v *VoiceCallProcessor) Health(ctx context.Context) HealthReport {
	report := HealthReport{
		Status:     "healthy",
		UptimeSecs: int64(time.Since(v.startedAt).Seconds()),
		Components: map[string]ComponentStatus{},
	}

	if err := v.sessions.Healthy(ctx); err != nil {
		report.Components["sessions"] = ComponentStatus{Status: "unhealthy", Detail: err.Error()}
		report.Status = "unhealthy"
	} else {
		report.Components["sessions"] = ComponentStatus{Status: "healthy"}
	}

	if v.knowledge == nil {
		report.Components["knowledge"] = ComponentStatus{Status: "disabled"}
	} else if count, err := v.knowledge.Count(ctx); err != nil {
		report.Components["knowledge"] = ComponentStatus{Status: "degraded", Detail: err.Error()}
		if report.Status == "healthy" {
			report.Status = "degraded"
		}
	} else {
		report.Components["knowledge"] = ComponentStatus{
			Status: "healthy",
			Detail: fmt.Sprintf("%d chunks indexed", count),
		}
	}

	if v.cfg.RAG.Enabled {
		report.Components["generation"] = ComponentStatus{Status: "healthy", Detail: v.cfg.RAG.Provider}
	} else {
		report.Components["generation"] = ComponentStatus{Status: "disabled"}
	}
	return report
}
