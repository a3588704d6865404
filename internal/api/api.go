package api

import (
	"github.com/gin-gonic/gin"

	"voice-assist-server/internal/auth"
	"voice-assist-server/internal/calllimit"
	"voice-assist-server/internal/voicecall/handler"
)

type API struct {
	router    *gin.RouterGroup
	handler   *handler.Handler
	guard     *auth.Guard
	calllimit *calllimit.Service
}

func New(router *gin.RouterGroup, h *handler.Handler, guard *auth.Guard, limiter *calllimit.Service) API {
	return API{
		router:    router,
		handler:   h,
		guard:     guard,
		calllimit: limiter,
	}
}

func (a *API) RegisterRoutes() {
	a.router.GET("/", a.handler.HandleRoot)
	a.router.GET("/health", a.handler.HandleHealth)

	// Provider webhooks come straight from Twilio and carry no bearer token.
	a.router.POST("/voice/outbound", a.handler.HandleOutboundTwiML)
	a.router.POST("/voice/process-speech", a.handler.HandleProcessSpeech)
	a.router.POST("/call-status", a.handler.HandleCallStatus)

	operator := a.router.Group("", a.guard.Middleware())
	{
		operator.POST("/make-call", a.calllimit.Middleware(), a.handler.HandleMakeCall)
		operator.POST("/interrupt-call/:call_sid", a.handler.HandleInterruptCall)
		operator.GET("/sessions", a.handler.HandleListSessions)
		operator.GET("/session/:call_sid", a.handler.HandleGetSession)
	}
}
