package account

import (
	"context"
	"errors"

	domain "github.com/devsquadbr/crm-template/internal/domain/account"
	"github.com/devsquadbr/crm-template/internal/audit"
	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/models"
)

const (
	CodeRegistrationDisabled = "registration_disabled"
	CodeInvalidEmailDomain   = "invalid_email_domain"
	CodeEmailTaken           = "email_already_registered"
	CodeSelfModification     = "self_modification_forbidden"
	CodeUserNotFound         = "user_not_found"
)

type Service struct {
	identity domain.IdentityStore
	settings domain.SettingsStore
	auditor  *audit.Dispatcher
}

func NewService(
	identity domain.IdentityStore,
	settings domain.SettingsStore,
	auditor *audit.Dispatcher,
) *Service {
	return &Service{
		identity: identity,
		settings: settings,
		auditor:  auditor,
	}
}

// Roles returns the caller's role list. A missing principal yields an empty
// list, never an error.
func (s *Service) Roles(ctx context.Context, userID string) ([]string, error) {
	if _, err := s.identity.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	roles, err := s.identity.UserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []string{}
	}
	return roles, nil
}

func (s *Service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.identity.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.identity.FindUserByEmail(ctx, email)
}

func (s *Service) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return s.identity.UpdatePassword(ctx, userID, passwordHash)
}

// DeleteOwnAccount removes the caller's account and every customer they own.
func (s *Service) DeleteOwnAccount(ctx context.Context, userID string) error {
	if err := s.identity.DeleteAccount(ctx, userID); err != nil {
		return err
	}

	s.dispatch(userID, "account_deleted", "user", userID, nil)
	return nil
}

// Operations reports the anonymous capability flags: whether email-backed
// flows are operable and whether registration is open.
func (s *Service) Operations(ctx context.Context) (*dto.Operations, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.Operations{
		AllOperationsAllowed: settings.EmailAPIKey != "" && settings.SystemEmailAddress != "",
		RegistrationEnabled:  settings.RegistrationEnabled,
	}, nil
}

func (s *Service) dispatch(actorID, action, entity, entityID string, metadata any) {
	if s.auditor == nil {
		return
	}
	s.auditor.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	})
}
