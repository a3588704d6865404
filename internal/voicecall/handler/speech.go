package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"

	"voice-assist-server/internal/session"
	"voice-assist-server/internal/voicecall/processor"
)

const (
	speechTimeoutSecs = "3"
	speechModel       = "experimental_conversations"
	speechHints       = "price, order, delivery, timing, address, नमस्ते, धन्यवाद"
	noInputReprompt   = "I didn't hear anything. Please go ahead, I'm listening."
)

// gatherLocale maps a session language to the speech recognition locale.
func gatherLocale(lang session.Language) string {
	if lang == session.LanguageHindi {
		return "hi-IN"
	}
	return "en-IN"
}

// gatherSpeech builds the listen verb that posts recognized speech back to
// the turn endpoint.
func (h *Handler) gatherSpeech(lang session.Language, prompt string) *twiml.VoiceGather {
	gather := &twiml.VoiceGather{
		Input:         "speech",
		Action:        h.cfg.Server.PublicURL + "/voice/process-speech",
		Method:        "POST",
		Language:      gatherLocale(lang),
		SpeechTimeout: speechTimeoutSecs,
		SpeechModel:   speechModel,
		Enhanced:      "true",
		Hints:         speechHints,
	}
	if prompt != "" {
		gather.InnerElements = []twiml.Element{
			&twiml.VoiceSay{Message: prompt},
		}
	}
	return gather
}

func (h *Handler) respondTwiML(c *gin.Context, elements []twiml.Element) {
	markup, err := twiml.Voice(elements)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to render TwiML", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, markup)
}

// HandleOutboundTwiML answers the provider's initial webhook for a placed
// call: speak the greeting, then listen. A caller that stays silent hears
// a re-prompt and the cycle restarts.
func (h *Handler) HandleOutboundTwiML(c *gin.Context) {
	ctx := c.Request.Context()
	callSID := c.PostForm("CallSid")

	greeting := h.cfg.Server.Greeting
	if callSID != "" {
		if sess, err := h.processor.GetSession(ctx, callSID); err == nil && sess.InitialMessage != "" {
			greeting = sess.InitialMessage
		}
	}

	h.respondTwiML(c, []twiml.Element{
		h.gatherSpeech(session.LanguageEnglish, greeting),
		&twiml.VoiceSay{Message: noInputReprompt},
		&twiml.VoiceRedirect{Url: h.cfg.Server.PublicURL + "/voice/outbound", Method: "POST"},
	})
}

// HandleProcessSpeech runs one conversational turn from recognized speech
// and speaks the reply, either listening again or hanging up.
func (h *Handler) HandleProcessSpeech(c *gin.Context) {
	ctx := c.Request.Context()

	callSID := c.PostForm("CallSid")
	utterance := c.PostForm("SpeechResult")
	confidence, _ := strconv.ParseFloat(c.PostForm("Confidence"), 64)

	if utterance == "" {
		// Nothing recognized: re-prompt and listen again.
		h.respondTwiML(c, []twiml.Element{
			h.gatherSpeech(session.LanguageEnglish, noInputReprompt),
			&twiml.VoiceRedirect{Url: h.cfg.Server.PublicURL + "/voice/outbound", Method: "POST"},
		})
		return
	}

	result := h.processor.ProcessTurn(ctx, processor.TurnInput{
		CallSID:      callSID,
		Utterance:    utterance,
		Confidence:   confidence,
		RecordingURL: c.PostForm("RecordingUrl"),
		RecordingSID: c.PostForm("RecordingSid"),
	})

	if result.EndCall {
		h.respondTwiML(c, []twiml.Element{
			&twiml.VoiceSay{Message: result.Reply},
			&twiml.VoiceHangup{},
		})
		return
	}

	h.respondTwiML(c, []twiml.Element{
		&twiml.VoiceSay{Message: result.Reply},
		h.gatherSpeech(result.Language, ""),
		&twiml.VoiceSay{Message: noInputReprompt},
		&twiml.VoiceRedirect{Url: h.cfg.Server.PublicURL + "/voice/outbound", Method: "POST"},
	})
}
