package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voice-assist-server/internal/apierrors"
	"voice-assist-server/internal/session"
)

func isNotFound(err error) bool {
	return errors.Is(err, session.ErrSessionNotFound)
}

type sessionSummary struct {
	CallSID   string    `json:"call_sid"`
	To        string    `json:"to"`
	From      string    `json:"from"`
	StartedAt time.Time `json:"started_at"`
	Language  string    `json:"language"`
	Turns     int       `json:"turns"`
}

// HandleListSessions returns a summary of every live session.
func (h *Handler) HandleListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	all, err := h.processor.ListSessions(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to list sessions", err)
		apierrors.InternalError(c, err)
		return
	}

	summaries := make([]sessionSummary, 0, len(all))
	for sid, sess := range all {
		summaries = append(summaries, sessionSummary{
			CallSID:   sid,
			To:        sess.To,
			From:      sess.From,
			StartedAt: sess.StartedAt,
			Language:  string(sess.Language),
			Turns:     len(sess.History),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(summaries), "sessions": summaries})
}

// HandleGetSession returns one session including its full history.
func (h *Handler) HandleGetSession(c *gin.Context) {
	ctx := c.Request.Context()
	callSID := c.Param("call_sid")

	sess, err := h.processor.GetSession(ctx, callSID)
	if err != nil {
		if isNotFound(err) {
			apierrors.NotFound(c, "session not found")
			return
		}
		h.logger.Error(ctx, "failed to load session", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// HandleHealth reports per-component health. Degraded or unhealthy overall
// status still returns 200 so load balancers see detail, not flapping.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.Health(c.Request.Context()))
}

// HandleRoot identifies the service and reports how many calls are live.
func (h *Handler) HandleRoot(c *gin.Context) {
	ctx := c.Request.Context()

	active := 0
	if all, err := h.processor.ListSessions(ctx); err != nil {
		h.logger.Warn(ctx, "failed to count active sessions", err)
	} else {
		active = len(all)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"message":         "voice-assist-server is running",
		"active_sessions": active,
		"public_url":      h.cfg.Server.PublicURL,
	})
}
