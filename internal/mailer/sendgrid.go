package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const sendGridURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridProvider posts to the SendGrid v3 mail/send API.
type SendGridProvider struct {
	client *http.Client
	url    string
}

func NewSendGridProvider() *SendGridProvider {
	return &SendGridProvider{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    sendGridURL,
	}
}

func (p *SendGridProvider) Name() string { return "sendgrid" }

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPayload struct {
	Personalizations []struct {
		To []sendGridAddress `json:"to"`
	} `json:"personalizations"`
	From    sendGridAddress `json:"from"`
	Subject string          `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func (p *SendGridProvider) Deliver(ctx context.Context, apiKey, from string, msg Message) error {
	payload := sendGridPayload{
		From:    sendGridAddress{Email: from},
		Subject: msg.Subject,
	}
	payload.Personalizations = append(payload.Personalizations, struct {
		To []sendGridAddress `json:"to"`
	}{To: []sendGridAddress{{Email: msg.To}}})

	// SendGrid requires text/plain before text/html.
	if msg.Text != "" {
		payload.Content = append(payload.Content, struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		}{Type: "text/plain", Value: msg.Text})
	}
	if msg.HTML != "" {
		payload.Content = append(payload.Content, struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		}{Type: "text/html", Value: msg.HTML})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	return nil
}

var _ Provider = (*SendGridProvider)(nil)
