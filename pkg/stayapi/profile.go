package stayapi

import (
	"context"
	"net/http"
)

type profileEnvelope struct {
	Envelope
	Data Profile `json:"data"`
}

// GetProfile fetches the authenticated user's profile.
func (s *Session) GetProfile(ctx context.Context) (*Profile, error) {
	var env profileEnvelope
	if err := s.getJSON(ctx, "/profile", &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateProfile updates the authenticated user's profile fields and returns
// the updated profile.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error) {
	var env profileEnvelope
	if err := s.sendJSON(ctx, http.MethodPut, "/profile", req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ChangePassword changes the authenticated user's password. The session's
// tokens remain valid; the upstream invalidates other devices' refresh
// tokens on its side.
func (s *Session) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return s.sendJSON(ctx, http.MethodPost, "/profile/password", req, nil)
}
