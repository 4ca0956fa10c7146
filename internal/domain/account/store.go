package account

import (
	"context"
	"errors"

	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// IdentityStore is the identity-provider boundary. The GORM implementation
// is the default; the interface keeps it swappable for a hosted provider.
type IdentityStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CountUsers(ctx context.Context) (int64, error)

	// DeleteAccount removes the user's customers, role assignments and the
	// user row itself in one transaction. Customers must never outlive
	// their owner.
	DeleteAccount(ctx context.Context, userID string) error

	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	UserRoles(ctx context.Context, userID string) ([]string, error)
	IsInRole(ctx context.Context, userID, role string) (bool, error)
	AddRole(ctx context.Context, userID, role string) error
	RemoveRole(ctx context.Context, userID, role string) error

	SearchUsers(ctx context.Context, search dto.Search) ([]models.User, int64, error)
}

// SettingsStore reads and writes the SystemSetting singleton.
type SettingsStore interface {
	Get(ctx context.Context) (*models.SystemSetting, error)
	Update(ctx context.Context, settings *models.SystemSetting) error
}
