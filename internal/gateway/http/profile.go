package http

import (
	"encoding/json"
	"net/http"

	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/stayapi"
)

// ProfileHandler proxies account settings.
type ProfileHandler struct {
	Cookies httpx.CookieConfig
}

// HandleGet godoc
//
//	@Summary		Get Profile
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	Envelope	"profile"
//	@Failure		401	{object}	Envelope
//	@Router			/api/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := sessionFrom(r.Context()).Session().GetProfile(r.Context())
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", profile)
}

// HandleUpdate godoc
//
//	@Summary		Update Profile
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Envelope	"profile"
//	@Failure		400	{object}	Envelope
//	@Failure		401	{object}	Envelope
//	@Router			/api/profile [put].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req stayapi.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := sessionFrom(r.Context()).Session().UpdateProfile(r.Context(), req)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "profile updated", profile)
}

// HandleChangePassword godoc
//
//	@Summary		Change Password
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
//	@Failure		401	{object}	Envelope
//	@Router			/api/profile/password [put].
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req stayapi.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		respondMessage(w, http.StatusBadRequest, "current and new passwords are required")
		return
	}

	if err := sessionFrom(r.Context()).Session().ChangePassword(r.Context(), req); err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondMessage(w, http.StatusOK, "password changed")
}
