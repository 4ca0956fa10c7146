package mailer

import (
	"context"
	"log"

	domain "github.com/devsquadbr/crm-template/internal/domain/account"
)

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Sender delivers one message, or silently does nothing when the system has
// no email credentials configured.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Provider is one concrete delivery backend (SendGrid, SMTP2GO).
type Provider interface {
	Name() string
	Deliver(ctx context.Context, apiKey, from string, msg Message) error
}

// SettingsSender reads credentials from SystemSettings at send time, so an
// administrator updating the key takes effect without a restart. Missing
// credentials are a valid operating mode: the send becomes a no-op.
type SettingsSender struct {
	settings domain.SettingsStore
	provider Provider
}

func NewSettingsSender(settings domain.SettingsStore, provider Provider) *SettingsSender {
	return &SettingsSender{settings: settings, provider: provider}
}

func (s *SettingsSender) Send(ctx context.Context, msg Message) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	if settings.EmailAPIKey == "" || settings.SystemEmailAddress == "" {
		log.Printf("mailer: email not configured, skipping message to %s", msg.To)
		return nil
	}

	if err := s.provider.Deliver(ctx, settings.EmailAPIKey, settings.SystemEmailAddress, msg); err != nil {
		return err
	}

	log.Printf("mailer: %s queued email to %s", s.provider.Name(), msg.To)
	return nil
}

var _ Sender = (*SettingsSender)(nil)
