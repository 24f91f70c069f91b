package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsukihara/workshelf/internal/platform/apperr"
	"github.com/tsukihara/workshelf/internal/platform/respond"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getSettings)
	router.Put("/", handler.putSettings)
	return router
}

// getSettings handles GET /settings.
func (handler *Handler) getSettings(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.store.Load(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}

// putSettings handles PUT /settings. The update runs inside an edit session,
// so a failed validation or save leaves the stored record untouched.
func (handler *Handler) putSettings(writer http.ResponseWriter, request *http.Request) {
	session, err := Begin(request.Context(), handler.store)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := json.NewDecoder(request.Body).Decode(&session.Working); err != nil {
		session.Cancel()
		respond.Error(writer, request, apperr.ValidationError("Malformed settings payload"))
		return
	}

	if !session.Working.PageLocale.IsSupported() {
		session.Cancel()
		respond.Error(writer, request, apperr.ValidationError("Unsupported page locale"))
		return
	}

	if err := session.Commit(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session.Working)
}
