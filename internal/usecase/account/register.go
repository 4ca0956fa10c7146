package account

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/devsquadbr/crm-template/internal/domain/account"
	"github.com/devsquadbr/crm-template/internal/httperr"
	"github.com/devsquadbr/crm-template/internal/models"
	"github.com/devsquadbr/crm-template/internal/validators"
)

// Register creates a new account, subject to the registration gate and the
// optional email-domain allow-list. The very first account in the system is
// granted the administrator role.
func (s *Service) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !settings.RegistrationEnabled {
		return nil, httperr.ErrBusinessMsg(CodeRegistrationDisabled, "Registration is disabled")
	}

	if settings.EmailDomainRestriction != "" &&
		!validators.DomainAllowed(email, settings.EmailDomainRestriction) {
		return nil, httperr.ErrBusinessMsg(
			CodeInvalidEmailDomain,
			"Invalid domain. You must use an email ending in: "+settings.EmailDomainRestriction,
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.identity.CreateUser(ctx, email, string(hashed))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, httperr.ErrBusinessMsg(CodeEmailTaken, "An account with this email already exists")
		}
		return nil, err
	}

	count, err := s.identity.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	if count == 1 {
		if err := s.identity.AddRole(ctx, user.ID, models.RoleAdministrator); err != nil {
			return nil, err
		}
	}

	s.dispatch(user.ID, "account_registered", "user", user.ID, nil)

	return user, nil
}
