package customer

import (
	"context"
	"errors"

	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/models"
)

// ErrNotFound covers both "no such row" and "row owned by someone else".
// Callers must not be able to tell the two apart.
var ErrNotFound = errors.New("customer not found")

type Repository interface {
	Create(ctx context.Context, customer *models.Customer) error

	// GetByOwner resolves id AND owner together; a mismatch on either
	// returns ErrNotFound.
	GetByOwner(ctx context.Context, customerID, ownerID string) (*models.Customer, error)

	Update(ctx context.Context, customer *models.Customer) error

	DeleteByOwner(ctx context.Context, customerID, ownerID string) error

	// Search returns one page of the owner's customers plus the total
	// match count before pagination.
	Search(ctx context.Context, ownerID string, search dto.Search) ([]models.Customer, int64, error)
}
