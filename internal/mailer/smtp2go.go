package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const smtp2goURL = "https://api.smtp2go.com/v3/email/send"

// SMTP2GOProvider posts to the SMTP2GO email/send API.
type SMTP2GOProvider struct {
	client *http.Client
	url    string
}

func NewSMTP2GOProvider() *SMTP2GOProvider {
	return &SMTP2GOProvider{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    smtp2goURL,
	}
}

func (p *SMTP2GOProvider) Name() string { return "smtp2go" }

type smtp2goPayload struct {
	APIKey   string   `json:"api_key"`
	Sender   string   `json:"sender"`
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	HTMLBody string   `json:"html_body,omitempty"`
	TextBody string   `json:"text_body,omitempty"`
}

func (p *SMTP2GOProvider) Deliver(ctx context.Context, apiKey, from string, msg Message) error {
	body, err := json.Marshal(smtp2goPayload{
		APIKey:   apiKey,
		Sender:   from,
		To:       []string{msg.To},
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("smtp2go: unexpected status %d", resp.StatusCode)
	}
	return nil
}

var _ Provider = (*SMTP2GOProvider)(nil)
