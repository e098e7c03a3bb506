package v1handler

import (
	"context"
	"errors"
	"net/http"

	"countervalidator/internal/validator"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"
)

const multipartMemory = 32 << 20

func actor(r *http.Request, u *domain.User) validator.Actor {
	return validator.Actor{User: u, APIKey: CurrentAPIKey(r.Context())}
}

func (h *Handler) CreateFileValidation(w http.ResponseWriter, r *http.Request) error {
	u, err := requireVerified(r)
	if err != nil {
		return err
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.deps.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "multipart form parse error")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		fields := serrors.NewFieldError()
		fields.Add("file", "No file was submitted.")

		return fields.Err()
	}
	defer func() { _ = file.Close() }()

	v, err := h.deps.Validator.CreateFile(r.Context(), actor(r, u), validator.FileUpload{
		Filename: header.Filename,
		Body:     file,
		UserNote: r.FormValue("user_note"),
	})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, h.newValidationJSON(v))

	return nil
}

func (h *Handler) CreateCounterAPIValidation(w http.ResponseWriter, r *http.Request) error {
	u, err := requireVerified(r)
	if err != nil {
		return err
	}
	var req validator.CounterAPIRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	v, err := h.deps.Validator.CreateCounterAPI(r.Context(), actor(r, u), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, h.newValidationJSON(v))

	return nil
}

func (h *Handler) Validations(w http.ResponseWriter, r *http.Request) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	p, err := parsePage(r)
	if err != nil {
		return err
	}
	res, err := h.deps.Validator.Validations(r.Context(), u, validationFilter(r, p))
	if err != nil {
		return err
	}
	out := make([]validationJSON, 0, len(res.Validations))
	for i := range res.Validations {
		out = append(out, h.newValidationJSON(&res.Validations[i]))
	}
	page, err := newPage(r, p, res.Count, out)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, page)

	return nil
}

func (h *Handler) AllValidations(w http.ResponseWriter, r *http.Request) error {
	u, err := requireAdmin(r)
	if err != nil {
		return err
	}
	p, err := parsePage(r)
	if err != nil {
		return err
	}
	res, err := h.deps.Validator.AllValidations(r.Context(), u, validationFilter(r, p))
	if err != nil {
		return err
	}
	out := make([]validationWithUserJSON, 0, len(res.Validations))
	for i := range res.Validations {
		v := &res.Validations[i]
		out = append(out, validationWithUserJSON{validationJSON: h.newValidationJSON(v), User: newUserJSON(v.Core.User)})
	}
	page, err := newPage(r, p, res.Count, out)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, page)

	return nil
}

func (h *Handler) Validation(w http.ResponseWriter, r *http.Request) error {
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	v, err := h.deps.Validator.Validation(r.Context(), CurrentUser(r.Context()), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, h.newValidationDetailJSON(v))

	return nil
}

func (h *Handler) DeleteValidation(w http.ResponseWriter, r *http.Request) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	if err := h.deps.Validator.Delete(r.Context(), u, domain.ValidationID(id)); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)

	return nil
}

func (h *Handler) ValidationStats(w http.ResponseWriter, r *http.Request) error {
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	stats, err := h.deps.Validator.Stats(r.Context(), CurrentUser(r.Context()), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, newStatsJSON(stats))

	return nil
}

func (h *Handler) PublishValidation(w http.ResponseWriter, r *http.Request) error {
	return h.changePublication(w, r, h.deps.Validator.Publish)
}

func (h *Handler) UnpublishValidation(w http.ResponseWriter, r *http.Request) error {
	return h.changePublication(w, r, h.deps.Validator.Unpublish)
}

func (h *Handler) changePublication(w http.ResponseWriter, r *http.Request,
	change func(ctx context.Context, u *domain.User, id domain.ValidationID) (*domain.Validation, error)) error {
	u, err := requireUser(r)
	if err != nil {
		return err
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	v, err := change(r.Context(), u, domain.ValidationID(id))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, h.newValidationJSON(v))

	return nil
}

func (h *Handler) PublicValidation(w http.ResponseWriter, r *http.Request) error {
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	v, err := h.deps.Validator.PublicValidation(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, h.newPublicValidationJSON(v))

	return nil
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// PublicValidations refuses to enumerate published validations.
func (h *Handler) PublicValidations(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusForbidden, detailResponse{Detail: "Listing public validations is not allowed."})

	return nil
}

func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) error {
	id, err := uuidParam(r, "validationID")
	if err != nil {
		return err
	}
	p, err := parsePage(r)
	if err != nil {
		return err
	}
	res, err := h.deps.Validator.Messages(r.Context(), CurrentUser(r.Context()), id, messageFilter(r, p))
	if err != nil {
		return err
	}
	out := make([]messageJSON, 0, len(res.Messages))
	for i := range res.Messages {
		out = append(out, newMessageJSON(&res.Messages[i]))
	}
	page, err := newPage(r, p, res.Count, out)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, page)

	return nil
}

func (h *Handler) Cores(w http.ResponseWriter, r *http.Request) error {
	u, err := requireAdmin(r)
	if err != nil {
		return err
	}
	p, err := parsePage(r)
	if err != nil {
		return err
	}
	res, err := h.deps.Validator.Cores(r.Context(), u, coreFilter(r, p))
	if err != nil {
		return err
	}
	out := make([]coreJSON, 0, len(res.Cores))
	for i := range res.Cores {
		out = append(out, newCoreJSON(&res.Cores[i]))
	}
	page, err := newPage(r, p, res.Count, out)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, page)

	return nil
}

func (h *Handler) Core(w http.ResponseWriter, r *http.Request) error {
	u, err := requireAdmin(r)
	if err != nil {
		return err
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		return err
	}
	core, err := h.deps.Validator.Core(r.Context(), u, domain.CoreID(id))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, newCoreJSON(core))

	return nil
}

func (h *Handler) CoreStats(w http.ResponseWriter, r *http.Request) error {
	u, err := requireAdmin(r)
	if err != nil {
		return err
	}
	of, err := statsUser(r)
	if err != nil {
		return err
	}
	stats, err := h.deps.Validator.CoreStats(r.Context(), u, of)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, stats)

	return nil
}

func (h *Handler) CoreTimeStats(w http.ResponseWriter, r *http.Request) error {
	u, err := requireAdmin(r)
	if err != nil {
		return err
	}
	of, err := statsUser(r)
	if err != nil {
		return err
	}
	stats, err := h.deps.Validator.CoreTimeStats(r.Context(), u, of)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, newTimeStatsJSON(stats))

	return nil
}

func (h *Handler) CoreSplitStats(w http.ResponseWriter, r *http.Request) error {
	u, err := requireAdmin(r)
	if err != nil {
		return err
	}
	of, err := statsUser(r)
	if err != nil {
		return err
	}
	stats, err := h.deps.Validator.CoreSplitStats(r.Context(), u, of)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = []storage.SplitStat{}
	}
	writeJSON(w, http.StatusOK, stats)

	return nil
}

func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) error {
	u, err := requireAdmin(r)
	if err != nil {
		return err
	}
	status, err := h.deps.Validator.QueueStatus(r.Context(), u)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, status)

	return nil
}
