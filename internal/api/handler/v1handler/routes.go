package v1handler

import (
	"net/http"

	"countervalidator/pkg/controller"
	"countervalidator/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// handlerFunc is an endpoint whose errors are rendered by the Handler.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

// Routes returns the /api/v1 router. Trailing slashes are optional and a nil
// throttle disables API key rate limiting.
func (h *Handler) Routes(sec *SecHandler, throttle *controller.Throttle) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(sec.Middleware(h))
	if throttle != nil {
		r.Use(controller.WithThrottle(throttle, APIKeyThrottleKey))
	}

	r.Route("/core", func(r chi.Router) {
		r.Post("/login", h.wrap(h.Login))
		r.Get("/user", h.wrap(h.CurrentUser))
		r.Get("/api-key", h.wrap(h.APIKeys))
		r.Post("/api-key", h.wrap(h.CreateAPIKey))
		r.Get("/api-key/{prefix}", h.wrap(h.APIKey))
		r.Delete("/api-key/{prefix}", h.wrap(h.RevokeAPIKey))
	})

	r.Route("/counter", func(r chi.Router) {
		r.Get("/platform", h.wrap(h.Platforms))
		r.Get("/platform/{id}", h.wrap(h.Platform))
		r.Get("/sushi", h.wrap(h.SushiServices))
		r.Get("/sushi/{id}", h.wrap(h.SushiService))
	})

	r.Route("/validations", func(r chi.Router) {
		r.Post("/validation/file", h.wrap(h.CreateFileValidation))
		r.Post("/counter-api-validation", h.wrap(h.CreateCounterAPIValidation))

		r.Get("/validation", h.wrap(h.Validations))
		r.Get("/validation/all", h.wrap(h.AllValidations))
		r.Get("/validation/{id}", h.wrap(h.Validation))
		r.Delete("/validation/{id}", h.wrap(h.DeleteValidation))
		r.Get("/validation/{id}/stats", h.wrap(h.ValidationStats))
		r.Post("/validation/{id}/publish", h.wrap(h.PublishValidation))
		r.Post("/validation/{id}/unpublish", h.wrap(h.UnpublishValidation))
		r.Get("/validation/{validationID}/messages", h.wrap(h.Messages))

		r.Get("/public/validation", h.wrap(h.PublicValidations))
		r.Get("/public/validation/{id}", h.wrap(h.PublicValidation))

		r.Get("/validation-core", h.wrap(h.Cores))
		r.Get("/validation-core/stats", h.wrap(h.CoreStats))
		r.Get("/validation-core/time-stats", h.wrap(h.CoreTimeStats))
		r.Get("/validation-core/split-stats", h.wrap(h.CoreSplitStats))
		r.Get("/validation-core/{id}", h.wrap(h.Core))

		r.Get("/queue", h.wrap(h.Queue))
	})

	r.NotFound(h.wrap(func(http.ResponseWriter, *http.Request) error { return serrors.ErrNotFound }))
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, detailResponse{Detail: "Method not allowed."})
	})

	return r
}
