package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/piresc/shesafe/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/shesafe/internal/pkg/http"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/pkg/retry"
)

// TwilioGW sends SMS through a Twilio-compatible Messages API
type TwilioGW struct {
	client *httpclient.Client
	sid    string
	token  string
	from   string
}

// NewTwilioGW creates an SMS gateway with retry and a circuit breaker
func NewTwilioGW(cfg models.SMSConfig, l *logger.ZapLogger) *TwilioGW {
	retryCfg := retry.DefaultConfig()
	if cfg.MaxRetries >= 0 {
		retryCfg.MaxRetries = cfg.MaxRetries
	}

	client := httpclient.NewClient(cfg.BaseURL, 10*time.Second,
		retry.New(retryCfg, l),
		circuitbreaker.New(circuitbreaker.DefaultConfig("sms")))
	return newTwilioGW(client, cfg)
}

func newTwilioGW(client *httpclient.Client, cfg models.SMSConfig) *TwilioGW {
	return &TwilioGW{
		client: client,
		sid:    cfg.AccountSID,
		token:  cfg.AuthToken,
		from:   cfg.From,
	}
}

// SendSMS posts the message and returns its sid
func (g *TwilioGW) SendSMS(ctx context.Context, to, body string) (string, error) {
	form := url.Values{
		"To":   {to},
		"From": {g.from},
		"Body": {body},
	}
	path := fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", url.PathEscape(g.sid))

	resp, err := g.client.PostForm(ctx, path, form, &httpclient.BasicAuth{Username: g.sid, Password: g.token})
	if err != nil {
		return "", fmt.Errorf("sms api: %w", err)
	}

	var message struct {
		SID    string `json:"sid"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body, &message); err != nil {
		return "", fmt.Errorf("sms api: malformed response: %w", err)
	}
	return message.SID, nil
}
