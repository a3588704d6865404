package twilio

import (
	"context"
	"fmt"

	"voice-assist-server/internal/config"
	"voice-assist-server/internal/observability"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Call carries the provider's response to a call-creation request.
type Call struct {
	SID    string
	Status string
}

// Client wraps the Twilio REST client for outbound call control.
type Client struct {
	rest        *twilio.RestClient
	phoneNumber string
	logger      *observability.Logger
}

// NewClient creates a Twilio REST client
func NewClient(cfg config.TwilioConfig, logger *observability.Logger) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Client{
		rest:        rest,
		phoneNumber: cfg.PhoneNumber,
		logger:      logger,
	}
}

// DefaultFrom returns the configured outbound caller number.
func (c *Client) DefaultFrom() string {
	return c.phoneNumber
}

// CreateCall places an outbound call whose call flow is driven by the TwiML
// at voiceURL, with lifecycle status callbacks posted to statusCallbackURL.
func (c *Client) CreateCall(ctx context.Context, to, from, voiceURL, statusCallbackURL string) (Call, error) {
	params := &twilioApi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetUrl(voiceURL)
	params.SetStatusCallback(statusCallbackURL)
	params.SetStatusCallbackEvent([]string{"initiated", "ringing", "answered", "completed"})
	params.SetMachineDetection("DetectMessageEnd")
	params.SetRecord(true)

	resp, err := c.rest.Api.CreateCall(params)
	if err != nil {
		return Call{}, fmt.Errorf("failed to create call: %w", err)
	}

	call := Call{}
	if resp.Sid != nil {
		call.SID = *resp.Sid
	}
	if resp.Status != nil {
		call.Status = *resp.Status
	}

	c.logger.Info(ctx, "call initiated",
		observability.Field{Key: "call_sid", Value: call.SID},
		observability.Field{Key: "to", Value: to},
	)

	return call, nil
}

// UpdateCallTwiML replaces the TwiML currently executing on an active call.
func (c *Client) UpdateCallTwiML(ctx context.Context, callSID, twimlStr string) error {
	params := &twilioApi.UpdateCallParams{}
	params.SetTwiml(twimlStr)

	if _, err := c.rest.Api.UpdateCall(callSID, params); err != nil {
		return fmt.Errorf("failed to update call %s: %w", callSID, err)
	}

	c.logger.Info(ctx, "call updated with new TwiML",
		observability.Field{Key: "call_sid", Value: callSID},
	)
	return nil
}
