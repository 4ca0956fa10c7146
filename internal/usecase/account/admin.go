package account

import (
	"context"
	"errors"

	domain "github.com/devsquadbr/crm-template/internal/domain/account"
	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/httperr"
	"github.com/devsquadbr/crm-template/internal/models"
)

func errSelf() error {
	return httperr.ErrBusinessMsg(CodeSelfModification, "You cannot modify your own account here")
}

// ToggleAdministratorRole flips the target's administrator membership. The
// caller can never target themselves.
func (s *Service) ToggleAdministratorRole(ctx context.Context, targetID, callerID string) error {
	if targetID == callerID {
		return errSelf()
	}

	if _, err := s.identity.FindUserByID(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return httperr.ErrBusinessMsg(CodeUserNotFound, "User not found")
		}
		return err
	}

	isAdmin, err := s.identity.IsInRole(ctx, targetID, models.RoleAdministrator)
	if err != nil {
		return err
	}

	if isAdmin {
		err = s.identity.RemoveRole(ctx, targetID, models.RoleAdministrator)
	} else {
		err = s.identity.AddRole(ctx, targetID, models.RoleAdministrator)
	}
	if err != nil {
		return err
	}

	s.dispatch(callerID, "admin_role_toggled", "user", targetID,
		map[string]bool{"is_administrator": !isAdmin})
	return nil
}

// SetAdministratorRole is the absolute variant of the toggle: it grants or
// revokes regardless of current membership.
func (s *Service) SetAdministratorRole(ctx context.Context, targetID, callerID string, isAdmin bool) error {
	if targetID == callerID {
		return errSelf()
	}

	if _, err := s.identity.FindUserByID(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return httperr.ErrBusinessMsg(CodeUserNotFound, "User not found")
		}
		return err
	}

	var err error
	if isAdmin {
		err = s.identity.AddRole(ctx, targetID, models.RoleAdministrator)
	} else {
		err = s.identity.RemoveRole(ctx, targetID, models.RoleAdministrator)
	}
	if err != nil {
		return err
	}

	s.dispatch(callerID, "admin_role_set", "user", targetID,
		map[string]bool{"is_administrator": isAdmin})
	return nil
}

// DeleteUser removes another user's account and all their customers.
func (s *Service) DeleteUser(ctx context.Context, targetID, callerID string) error {
	if targetID == callerID {
		return errSelf()
	}

	if err := s.identity.DeleteAccount(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return httperr.ErrBusinessMsg(CodeUserNotFound, "User not found")
		}
		return err
	}

	s.dispatch(callerID, "user_deleted", "user", targetID, nil)
	return nil
}

// SearchUsers pages over all users. IsAdministrator and IsSelf are computed
// per returned row, after the page is materialized.
func (s *Service) SearchUsers(
	ctx context.Context,
	callerID string,
	search dto.Search,
) (*dto.SearchResponse[dto.UserListItem], error) {

	search.Normalize()

	users, total, err := s.identity.SearchUsers(ctx, search)
	if err != nil {
		return nil, err
	}

	results := make([]dto.UserListItem, 0, len(users))
	for _, u := range users {
		isAdmin, err := s.identity.IsInRole(ctx, u.ID, models.RoleAdministrator)
		if err != nil {
			return nil, err
		}
		results = append(results, dto.UserListItem{
			ID:              u.ID,
			Email:           u.Email,
			IsAdministrator: isAdmin,
			IsSelf:          u.ID == callerID,
		})
	}

	return &dto.SearchResponse[dto.UserListItem]{
		Results: results,
		Total:   int(total),
	}, nil
}
