package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendConfig configures ResendNotifier.
type ResendConfig struct {
	APIKey  string
	From    string
	ReplyTo string
	// BaseURL overrides the Resend API root, e.g. for a local stub.
	BaseURL string
	Timeout time.Duration
}

// ResendNotifier delivers confirmations through the Resend API.
type ResendNotifier struct {
	cfg    ResendConfig
	client *resend.Client
	logger *zap.Logger
}

// NewResendNotifier creates a notifier. Timeout falls back to 10s.
func NewResendNotifier(cfg ResendConfig, logger *zap.Logger) (*ResendNotifier, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := resend.NewCustomClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse email base url: %w", err)
		}
		client.BaseURL = base
	}

	return &ResendNotifier{cfg: cfg, client: client, logger: logger}, nil
}

// SendConfirmation renders and sends the confirmation. A non-2xx answer is an error.
func (n *ResendNotifier) SendConfirmation(ctx context.Context, c Confirmation) error {
	html, text, err := renderConfirmation(c)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	sent, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.cfg.From,
		To:      []string{c.Email},
		ReplyTo: n.cfg.ReplyTo,
		Subject: confirmationSubject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	n.logger.Info("confirmation email sent",
		zap.String("booking_id", c.BookingID.String()),
		zap.String("to", c.Email),
		zap.String("email_id", sent.Id),
	)
	return nil
}
