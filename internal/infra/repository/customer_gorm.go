package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/devsquadbr/crm-template/internal/domain/customer"
	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(
	ctx context.Context,
	customer *models.Customer,
) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *CustomerGormRepository) GetByOwner(
	ctx context.Context,
	customerID string,
	ownerID string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", customerID, ownerID).
		First(&customer).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &customer, nil
}

func (r *CustomerGormRepository) Update(
	ctx context.Context,
	customer *models.Customer,
) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *CustomerGormRepository) DeleteByOwner(
	ctx context.Context,
	customerID string,
	ownerID string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", customerID, ownerID).
		Delete(&models.Customer{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Search
// --------------------------------------------------

var customerFilterColumns = []string{
	"name", "email", "phone", "address", "state", "postal", "notes",
}

// customerFilterConditions builds the OR-chain over the filterable columns.
// Every column gets the same escaped pattern so filter text matches
// literally, never as wildcards.
func customerFilterConditions(filter string) (string, []any) {
	like := likePattern(filter)

	var conds []string
	var args []any
	for _, col := range customerFilterColumns {
		conds = append(conds, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
		args = append(args, like)
	}
	return strings.Join(conds, " OR "), args
}

func (r *CustomerGormRepository) Search(
	ctx context.Context,
	ownerID string,
	search dto.Search,
) ([]models.Customer, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("owner_id = ?", ownerID)

	if filter := strings.ToLower(strings.TrimSpace(search.FilterText)); filter != "" {
		cond, args := customerFilterConditions(filter)
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// The tiebreak follows the sort direction so that ascending and
	// descending pages of the same data set are exact reverses.
	desc := search.Descending()
	col := dto.CustomerSortColumn(search.SortBy)

	var customers []models.Customer
	if err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Offset(search.Offset()).
		Limit(search.PageSize).
		Find(&customers).Error; err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
