package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "github.com/devsquadbr/crm-template/internal/domain/customer"
	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/httperr"
	"github.com/devsquadbr/crm-template/internal/models"
)

const (
	CodeNameRequired  = "customer_name_required"
	CodeNotFound      = "customer_not_found"
	CodeInvalidGender = "invalid_gender"
)

type Service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

func validate(in *dto.Customer) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return httperr.ErrBusinessMsg(CodeNameRequired, "Customer name is required")
	}

	switch in.Gender {
	case "", models.GenderNotSpecified, models.GenderMale, models.GenderFemale:
	default:
		return httperr.ErrBusinessMsg(CodeInvalidGender, "Unknown gender value")
	}
	if in.Gender == "" {
		in.Gender = models.GenderNotSpecified
	}

	return nil
}

// Create persists a new customer owned by the caller and returns its id.
func (s *Service) Create(ctx context.Context, ownerID string, in dto.Customer) (string, error) {
	if err := validate(&in); err != nil {
		return "", err
	}

	customer := models.Customer{
		OwnerID:     ownerID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Postal:      in.Postal,
		BirthDate:   in.BirthDate,
		Notes:       in.Notes,
		Gender:      in.Gender,
		Active:      in.Active,
		ImageBase64: in.ImageBase64,
		CreatedOn:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, &customer); err != nil {
		return "", err
	}

	return customer.ID, nil
}

func (s *Service) Get(ctx context.Context, customerID, ownerID string) (*dto.Customer, error) {
	customer, err := s.repo.GetByOwner(ctx, customerID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusinessMsg(CodeNotFound, "Customer not found")
		}
		return nil, err
	}

	return toDto(customer), nil
}

// Update overwrites every mutable field from the input and stamps UpdateOn.
func (s *Service) Update(ctx context.Context, customerID, ownerID string, in dto.Customer) error {
	if err := validate(&in); err != nil {
		return err
	}

	customer, err := s.repo.GetByOwner(ctx, customerID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusinessMsg(CodeNotFound, "Customer not found")
		}
		return err
	}

	now := time.Now().UTC()
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.City = in.City
	customer.State = in.State
	customer.Postal = in.Postal
	customer.BirthDate = in.BirthDate
	customer.Notes = in.Notes
	customer.Gender = in.Gender
	customer.Active = in.Active
	customer.ImageBase64 = in.ImageBase64
	customer.UpdateOn = &now

	return s.repo.Update(ctx, customer)
}

func (s *Service) Delete(ctx context.Context, customerID, ownerID string) error {
	if err := s.repo.DeleteByOwner(ctx, customerID, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusinessMsg(CodeNotFound, "Customer not found")
		}
		return err
	}
	return nil
}

func (s *Service) Search(
	ctx context.Context,
	ownerID string,
	search dto.Search,
) (*dto.SearchResponse[dto.CustomerListItem], error) {

	search.Normalize()

	customers, total, err := s.repo.Search(ctx, ownerID, search)
	if err != nil {
		return nil, err
	}

	results := make([]dto.CustomerListItem, 0, len(customers))
	for _, c := range customers {
		results = append(results, dto.CustomerListItem{
			ID:     c.ID,
			Name:   c.Name,
			City:   c.City,
			State:  c.State,
			Postal: c.Postal,
			Gender: c.Gender,
			Active: c.Active,
		})
	}

	return &dto.SearchResponse[dto.CustomerListItem]{
		Results: results,
		Total:   int(total),
	}, nil
}

func toDto(c *models.Customer) *dto.Customer {
	return &dto.Customer{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		Postal:      c.Postal,
		BirthDate:   c.BirthDate,
		Notes:       c.Notes,
		Gender:      c.Gender,
		Active:      c.Active,
		ImageBase64: c.ImageBase64,
		CreatedOn:   c.CreatedOn,
		UpdateOn:    c.UpdateOn,
	}
}
