package service

import (
	"context"
	"errors"
	"log/slog"

	domainerrors "github.com/mikelind28/chapter-champ/internal/errors"
	"github.com/mikelind28/chapter-champ/internal/store"
)

// AdminService handles administrative user management.
// Capability checks happen at the API boundary; these methods assume the
// caller is already authorized.
type AdminService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(store *store.Store, logger *slog.Logger) *AdminService {
	return &AdminService{
		store:  store,
		logger: logger,
	}
}

// ListUsers returns every registered user, sanitized.
func (s *AdminService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, storeError(err, "list users")
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out, nil
}

// PromoteUser grants admin capability to a user. Promoting an admin again
// is a no-op that still succeeds.
func (s *AdminService) PromoteUser(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, storeError(err, "get user")
	}

	if !user.IsAdmin {
		user.IsAdmin = true
		if err := s.store.UpdateUser(ctx, user); err != nil {
			return nil, storeError(err, "update user")
		}

		if s.logger != nil {
			s.logger.Info("user promoted to admin",
				"user_id", user.ID,
				"username", user.Username,
			)
		}
	}

	resp := NewUserResponse(user)
	return &resp, nil
}

// DeleteUser removes a user account and its entire library.
// Admins cannot delete their own account; callerID guards against that.
func (s *AdminService) DeleteUser(ctx context.Context, callerID, userID string) error {
	if callerID == userID {
		return domainerrors.Validation("cannot delete your own account")
	}

	if err := s.store.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return storeError(err, "delete user")
	}

	return nil
}
