package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerAdminRoutes() {
	security := []map[string][]string{{"bearer": {}}}

	huma.Register(s.api, huma.Operation{
		OperationID: "adminListUsers",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/users",
		Summary:     "List users",
		Description: "Returns all registered users. Requires admin capability.",
		Tags:        []string{"Admin"},
		Security:    security,
	}, s.handleAdminListUsers)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminPromoteUser",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/users/{id}/promote",
		Summary:     "Promote user to admin",
		Description: "Grants admin capability to a user. Requires admin capability.",
		Tags:        []string{"Admin"},
		Security:    security,
	}, s.handleAdminPromoteUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminDeleteUser",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/users/{id}",
		Summary:     "Delete user",
		Description: "Deletes a user account and its library. Requires admin capability.",
		Tags:        []string{"Admin"},
		Security:    security,
	}, s.handleAdminDeleteUser)
}

// === DTOs ===

// UserIDInput carries a user ID path parameter.
type UserIDInput struct {
	ID string `path:"id" doc:"User ID"`
}

// UserListResponse contains all registered users.
type UserListResponse struct {
	Users []UserResponse `json:"users" doc:"Registered users"`
}

// UserListOutput wraps the user list for Huma.
type UserListOutput struct {
	Body UserListResponse
}

// UserOutput wraps a single user for Huma.
type UserOutput struct {
	Body UserResponse
}

// MessageResponse contains a simple message.
type MessageResponse struct {
	Message string `json:"message" doc:"Success message"`
}

// MessageOutput wraps the message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// === Handlers ===

func (s *Server) handleAdminListUsers(ctx context.Context, _ *struct{}) (*UserListOutput, error) {
	if _, err := s.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.services.Admin.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, mapUserResponse(user))
	}

	return &UserListOutput{Body: UserListResponse{Users: out}}, nil
}

func (s *Server) handleAdminPromoteUser(ctx context.Context, input *UserIDInput) (*UserOutput, error) {
	if _, err := s.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := s.services.Admin.PromoteUser(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &UserOutput{Body: mapUserResponse(*user)}, nil
}

func (s *Server) handleAdminDeleteUser(ctx context.Context, input *UserIDInput) (*MessageOutput, error) {
	callerID, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Admin.DeleteUser(ctx, callerID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "User deleted"}}, nil
}
