package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"

	"voice-assist-server/internal/apierrors"
	"voice-assist-server/internal/voicecall/processor"
)

type makeCallRequest struct {
	ToNumber       string `json:"to_number" binding:"required"`
	FromNumber     string `json:"from_number"`
	InitialMessage string `json:"initial_message"`
}

type makeCallResponse struct {
	CallSID string `json:"call_sid"`
	Status  string `json:"status"`
	To      string `json:"to"`
	From    string `json:"from"`
}

// HandleMakeCall places an outbound call to the requested number.
func (h *Handler) HandleMakeCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req makeCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "INVALID_REQUEST", "to_number is required")
		return
	}

	info, err := h.processor.StartCall(ctx, processor.StartCallInput{
		To:             req.ToNumber,
		From:           req.FromNumber,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to place call", err)
		apierrors.ServiceUnavailable(c, "CALL_FAILED", "unable to place call", err)
		return
	}

	c.JSON(http.StatusOK, makeCallResponse{
		CallSID: info.CallSID,
		Status:  info.Status,
		To:      info.To,
		From:    info.From,
	})
}

// HandleCallStatus receives provider status callbacks posted as form data.
func (h *Handler) HandleCallStatus(c *gin.Context) {
	ctx := c.Request.Context()

	callSID := c.PostForm("CallSid")
	if callSID == "" {
		apierrors.BadRequest(c, "MISSING_CALL_SID", "CallSid is required")
		return
	}

	h.processor.HandleCallStatus(ctx, processor.CallStatusInput{
		CallSID:    callSID,
		Status:     c.PostForm("CallStatus"),
		AnsweredBy: c.PostForm("AnsweredBy"),
	})
	c.Status(http.StatusOK)
}

// HandleInterruptCall redirects a live call to a short pause, cutting off
// any speech in progress.
func (h *Handler) HandleInterruptCall(c *gin.Context) {
	ctx := c.Request.Context()
	callSID := c.Param("call_sid")

	pause := &twiml.VoicePause{Length: "1"}
	markup, err := twiml.Voice([]twiml.Element{pause})
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	if err := h.processor.InterruptCall(ctx, callSID, markup); err != nil {
		if isNotFound(err) {
			apierrors.NotFound(c, "no active session for call")
			return
		}
		h.logger.Error(ctx, "failed to interrupt call", err)
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"call_sid": callSID, "interrupted": true})
}
