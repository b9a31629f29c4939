package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mikelind28/chapter-champ/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/me",
		Summary:     "Get current user",
		Description: "Returns the authenticated user's profile and library",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCurrentUser)
}

// MeResponse contains the caller's profile together with their library.
type MeResponse struct {
	User    UserResponse    `json:"user" doc:"Authenticated user"`
	Library LibraryResponse `json:"library" doc:"Saved books with counts"`
}

// MeOutput wraps the current-user response for Huma.
type MeOutput struct {
	Body MeResponse
}

func (s *Server) handleGetCurrentUser(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	lib, err := s.services.Library.GetLibrary(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &MeOutput{
		Body: MeResponse{
			User:    mapUserResponse(service.NewUserResponse(user)),
			Library: mapLibraryResponse(lib),
		},
	}, nil
}
