package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/devsquadbr/crm-template/internal/domain/account"
	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/models"
)

type IdentityGormStore struct {
	db *gorm.DB
}

func NewIdentityGormStore(db *gorm.DB) *IdentityGormStore {
	return &IdentityGormStore{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *IdentityGormStore) CreateUser(
	ctx context.Context,
	email string,
	passwordHash string,
) (*models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrEmailTaken
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, createUserErr(err)
	}

	return &user, nil
}

// createUserErr maps a unique-index violation on email to ErrEmailTaken.
// The count check above races with concurrent registrations; the index is
// the real guard.
func createUserErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

func (s *IdentityGormStore) FindUserByID(
	ctx context.Context,
	userID string,
) (*models.User, error) {

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *IdentityGormStore) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *IdentityGormStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

// DeleteAccount removes the user's customers before the user itself, all in
// one transaction, so orphaned customer rows cannot survive a partial
// failure.
func (s *IdentityGormStore) DeleteAccount(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", userID).
			Delete(&models.Customer{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&models.UserRole{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func (s *IdentityGormStore) UpdatePassword(
	ctx context.Context,
	userID string,
	passwordHash string,
) error {

	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// --------------------------------------------------
// Roles
// --------------------------------------------------

func (s *IdentityGormStore) UserRoles(
	ctx context.Context,
	userID string,
) ([]string, error) {

	var assignments []models.UserRole
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(assignments))
	for _, a := range assignments {
		roles = append(roles, a.Role)
	}
	return roles, nil
}

func (s *IdentityGormStore) IsInRole(
	ctx context.Context,
	userID string,
	role string,
) (bool, error) {

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *IdentityGormStore) AddRole(
	ctx context.Context,
	userID string,
	role string,
) error {

	has, err := s.IsInRole(ctx, userID, role)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	return s.db.WithContext(ctx).
		Create(&models.UserRole{UserID: userID, Role: role}).Error
}

func (s *IdentityGormStore) RemoveRole(
	ctx context.Context,
	userID string,
	role string,
) error {

	return s.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&models.UserRole{}).Error
}

// --------------------------------------------------
// Search
// --------------------------------------------------

func (s *IdentityGormStore) SearchUsers(
	ctx context.Context,
	search dto.Search,
) ([]models.User, int64, error) {

	q := s.db.WithContext(ctx).Model(&models.User{})

	if filter := strings.ToLower(strings.TrimSpace(search.FilterText)); filter != "" {
		q = q.Where(`LOWER(email) LIKE ? ESCAPE '\'`, likePattern(filter))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	desc := search.Descending()
	col := dto.UserSortColumn(search.SortBy)

	var users []models.User
	if err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Offset(search.Offset()).
		Limit(search.PageSize).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Compile-time check
var _ domain.IdentityStore = (*IdentityGormStore)(nil)
