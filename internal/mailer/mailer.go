package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio/internal/config"
)

// ErrNotConfigured is returned when email API credentials are absent.
// Callers treat it like any other delivery failure.
var ErrNotConfigured = errors.New("email service credentials not configured")

// Sender delivers the two contact-form emails. Both are advisory side
// channels: the persisted contact message is the authoritative record
// and delivery failures never fail the submission.
type Sender interface {
	SendContactNotification(ctx context.Context, visitorName, visitorEmail, visitorPhone, subject, message string) error
	SendContactConfirmation(ctx context.Context, visitorEmail, visitorName string) error
}

// Client talks to the external email-sending API.
type Client struct {
	baseURL    string
	apiKey     string
	ownerEmail string
	ownerName  string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.MailConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL:    cfg.APIBaseURL,
		apiKey:     cfg.APIKey,
		ownerEmail: cfg.OwnerEmail,
		ownerName:  cfg.OwnerName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

func (c *Client) send(ctx context.Context, to, subject, html, text string) error {
	if c.baseURL == "" || c.apiKey == "" {
		c.log.Warn("email service credentials not configured")
		return ErrNotConfigured
	}

	if text == "" {
		text = html
	}

	body, err := json.Marshal(sendRequest{To: to, Subject: subject, HTML: html, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/email/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, detail)
	}

	c.log.WithField("to", to).Info("email sent")
	return nil
}

// SendContactNotification emails the site owner about a new inquiry.
func (c *Client) SendContactNotification(ctx context.Context, visitorName, visitorEmail, visitorPhone, subject, message string) error {
	return c.send(ctx,
		c.ownerEmail,
		"New Contact: "+subject,
		notificationHTML(visitorName, visitorEmail, visitorPhone, subject, message),
		notificationText(visitorName, visitorEmail, visitorPhone, subject, message),
	)
}

// SendContactConfirmation emails the visitor an acknowledgement.
func (c *Client) SendContactConfirmation(ctx context.Context, visitorEmail, visitorName string) error {
	return c.send(ctx,
		visitorEmail,
		"Thank You for Your Message",
		confirmationHTML(visitorName, c.ownerName),
		confirmationText(visitorName, c.ownerName),
	)
}
