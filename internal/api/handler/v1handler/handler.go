// Package v1handler implements the /api/v1 REST endpoints.
package v1handler

import (
	"context"
	"net/http"

	"countervalidator/internal/account"
	"countervalidator/internal/registry"
	"countervalidator/internal/validator"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/serrors"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultMaxUploadBytes = 100 << 20

// Deps are the services behind the endpoints.
type Deps struct {
	Account   account.Service
	Registry  registry.Service
	Validator validator.Service

	// MaxUploadBytes caps multipart uploads. Zero means 100 MiB.
	MaxUploadBytes int64
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = defaultMaxUploadBytes
	}

	return &Handler{deps: deps}
}

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// ErrorResponse pairs an ErrorBody with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// NewError maps err to an error response. Internal errors are logged and
// their details hidden.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "internal error", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: kind.Status(),
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: serrors.PublicMessage(err),
			Fields:  serrors.Fields(err),
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "JSON parse error")
	}

	return nil
}
