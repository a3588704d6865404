package processor

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"voice-assist-server/internal/clients/twilio"
	"voice-assist-server/internal/session"
)

func TestStartCallCreatesSession(t *testing.T) {
	p, sessions, _, dialer := newTestProcessor(t)
	ctx := context.Background()

	dialer.EXPECT().DefaultFrom().Return("+15550001111")
	dialer.EXPECT().
		CreateCall(ctx, "+15552223333", "+15550001111",
			"https://voice.example.com/voice/outbound",
			"https://voice.example.com/call-status").
		Return(twilio.Call{SID: "CA100", Status: "queued"}, nil)
	sessions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sess session.Session) error {
			if sess.CallSID != "CA100" {
				t.Errorf("session created with SID %q", sess.CallSID)
			}
			if sess.Language != session.LanguageEnglish {
				t.Errorf("new session language %s", sess.Language)
			}
			if sess.InitialMessage != "Hello from the bakery" {
				t.Errorf("initial message %q", sess.InitialMessage)
			}
			return nil
		})

	info, err := p.StartCall(ctx, StartCallInput{To: "+15552223333", InitialMessage: "Hello from the bakery"})
	if err != nil {
		t.Fatalf("StartCall: %v", err)
	}
	if info.CallSID != "CA100" || info.Status != "queued" {
		t.Errorf("unexpected call info %+v", info)
	}
	if info.From != "+15550001111" {
		t.Errorf("expected default from, got %q", info.From)
	}
}

func TestStartCallDialerFailure(t *testing.T) {
	p, _, _, dialer := newTestProcessor(t)
	ctx := context.Background()

	dialer.EXPECT().
		CreateCall(ctx, "+15552223333", "+15550009999", gomock.Any(), gomock.Any()).
		Return(twilio.Call{}, errors.New("twilio: 21211 invalid number"))

	_, err := p.StartCall(ctx, StartCallInput{To: "+15552223333", From: "+15550009999"})
	if err == nil {
		t.Fatal("expected error when dialer fails")
	}
}

func TestHandleCallStatusTerminalDeletesSession(t *testing.T) {
	p, sessions, _, _ := newTestProcessor(t)
	ctx := context.Background()

	sessions.EXPECT().Get(ctx, "CA200").Return(session.Session{
		CallSID: "CA200",
		History: []session.Turn{{Role: session.RoleUser, Content: "hi"}},
	}, nil)
	sessions.EXPECT().Delete(ctx, "CA200").Return(nil)

	p.HandleCallStatus(ctx, CallStatusInput{CallSID: "CA200", Status: "completed"})
}

func TestHandleCallStatusNonTerminalKeepsSession(t *testing.T) {
	p, _, _, _ := newTestProcessor(t)
	p.HandleCallStatus(context.Background(), CallStatusInput{CallSID: "CA201", Status: "ringing"})
}

func TestInterruptCallUnknownSession(t *testing.T) {
	p, sessions, _, _ := newTestProcessor(t)
	ctx := context.Background()

	sessions.EXPECT().Exists(ctx, "CA300").Return(false, nil)

	err := p.InterruptCall(ctx, "CA300", "<Response><Pause length=\"1\"/></Response>")
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestInterruptCallRedirectsLiveCall(t *testing.T) {
	p, sessions, _, dialer := newTestProcessor(t)
	ctx := context.Background()
	markup := "<Response><Pause length=\"1\"/></Response>"

	sessions.EXPECT().Exists(ctx, "CA301").Return(true, nil)
	dialer.EXPECT().UpdateCallTwiML(ctx, "CA301", markup).Return(nil)

	if err := p.InterruptCall(ctx, "CA301", markup); err != nil {
		t.Fatalf("InterruptCall: %v", err)
	}
}

func TestHealthReportsWorstComponent(t *testing.T) {
	p, sessions, _, _ := newTestProcessor(t)
	ctx := context.Background()

	sessions.EXPECT().Healthy(ctx).Return(errors.New("connection refused"))

	report := p.Health(ctx)
	if report.Status != "unhealthy" {
		t.Errorf("expected unhealthy overall, got %s", report.Status)
	}
	if report.Components["sessions"].Status != "unhealthy" {
		t.Errorf("sessions component %+v", report.Components["sessions"])
	}
	if report.Components["knowledge"].Status != "disabled" {
		t.Errorf("knowledge component %+v", report.Components["knowledge"])
	}
}

func TestHealthAllHealthy(t *testing.T) {
	p, sessions, _, _ := newTestProcessor(t)
	ctrl := gomock.NewController(t)
	knowledge := NewMockKnowledgeIndex(ctrl)
	p.knowledge = knowledge
	ctx := context.Background()

	sessions.EXPECT().Healthy(ctx).Return(nil)
	knowledge.EXPECT().Count(ctx).Return(42, nil)

	report := p.Health(ctx)
	if report.Status != "healthy" {
		t.Errorf("expected healthy, got %s", report.Status)
	}
	if report.Components["generation"].Detail != "gemini" {
		t.Errorf("generation component %+v", report.Components["generation"])
	}
}
