package v1handler

import (
	"net/http"
	"time"

	"countervalidator/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

var errUserNotFound = serrors.With(serrors.ErrNotFound, "user not found")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	token, err := h.deps.Account.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})

	return nil
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, currentUserJSON{
		userJSON:         *newUserJSON(u),
		IsValidatorAdmin: u.IsValidatorAdmin,
		IsSuperuser:      u.IsSuperuser,
		IsActive:         u.IsActive,
	})

	return nil
}

func (h *Handler) APIKeys(w http.ResponseWriter, r *http.Request) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	keys, err := h.deps.Account.APIKeys(r.Context(), u.ID)
	if err != nil {
		return err
	}
	now := time.Now()
	out := make([]apiKeyJSON, 0, len(keys))
	for i := range keys {
		out = append(out, newAPIKeyJSON(&keys[i], now))
	}
	writeJSON(w, http.StatusOK, out)

	return nil
}

func (h *Handler) APIKey(w http.ResponseWriter, r *http.Request) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	key, err := h.deps.Account.APIKey(r.Context(), u.ID, chi.URLParam(r, "prefix"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, newAPIKeyJSON(key, time.Now()))

	return nil
}

type createAPIKeyRequest struct {
	Name string `json:"name"`
}

type createAPIKeyResponse struct {
	Key string `json:"key"`
}

func (h *Handler) CreateAPIKey(w http.ResponseWriter, r *http.Request) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	var req createAPIKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	_, plain, err := h.deps.Account.CreateAPIKey(r.Context(), u.ID, req.Name)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, createAPIKeyResponse{Key: plain})

	return nil
}

func (h *Handler) RevokeAPIKey(w http.ResponseWriter, r *http.Request) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	key, err := h.deps.Account.RevokeAPIKey(r.Context(), u.ID, chi.URLParam(r, "prefix"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, newAPIKeyJSON(key, time.Now()))

	return nil
}
