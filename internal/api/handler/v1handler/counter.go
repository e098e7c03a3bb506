package v1handler

import (
	"net/http"

	"countervalidator/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrNotFound, "resource not found")
	}

	return id, nil
}

func (h *Handler) Platforms(w http.ResponseWriter, r *http.Request) error {
	if _, err := requireUser(r); err != nil {
		return err
	}
	platforms, err := h.deps.Registry.Platforms(r.Context())
	if err != nil {
		return err
	}
	out := make([]platformJSON, 0, len(platforms))
	for i := range platforms {
		out = append(out, newPlatformJSON(&platforms[i]))
	}
	writeJSON(w, http.StatusOK, out)

	return nil
}

func (h *Handler) Platform(w http.ResponseWriter, r *http.Request) error {
	if _, err := requireUser(r); err != nil {
		return err
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	platform, err := h.deps.Registry.Platform(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, newPlatformDetailJSON(platform))

	return nil
}

func (h *Handler) SushiServices(w http.ResponseWriter, r *http.Request) error {
	if _, err := requireUser(r); err != nil {
		return err
	}
	services, err := h.deps.Registry.SushiServices(r.Context())
	if err != nil {
		return err
	}
	out := make([]sushiServiceJSON, 0, len(services))
	for i := range services {
		out = append(out, newSushiServiceJSON(&services[i]))
	}
	writeJSON(w, http.StatusOK, out)

	return nil
}

func (h *Handler) SushiService(w http.ResponseWriter, r *http.Request) error {
	if _, err := requireUser(r); err != nil {
		return err
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	service, err := h.deps.Registry.SushiService(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, newSushiServiceJSON(service))

	return nil
}
