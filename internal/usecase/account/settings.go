package account

import (
	"context"
	"strings"

	"github.com/devsquadbr/crm-template/internal/dto"
)

// GetSettings returns the singleton settings with the API key masked. The
// real key never leaves the server.
func (s *Service) GetSettings(ctx context.Context) (*dto.SystemSettings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	masked := ""
	if settings.EmailAPIKey != "" {
		masked = dto.MaskedAPIKey
	}

	return &dto.SystemSettings{
		EmailAPIKey:            masked,
		SystemEmailAddress:     settings.SystemEmailAddress,
		RegistrationEnabled:    settings.RegistrationEnabled,
		EmailDomainRestriction: settings.EmailDomainRestriction,
	}, nil
}

// UpdateSettings overwrites the singleton. Submitting the masked placeholder
// as the API key keeps the stored key; any other value replaces it.
func (s *Service) UpdateSettings(ctx context.Context, callerID string, in dto.SystemSettings) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(in.EmailAPIKey) != dto.MaskedAPIKey {
		settings.EmailAPIKey = in.EmailAPIKey
	}
	settings.SystemEmailAddress = in.SystemEmailAddress
	settings.RegistrationEnabled = in.RegistrationEnabled
	settings.EmailDomainRestriction = in.EmailDomainRestriction

	if err := s.settings.Update(ctx, settings); err != nil {
		return err
	}

	s.dispatch(callerID, "settings_updated", "system_setting", settings.ID, nil)
	return nil
}
