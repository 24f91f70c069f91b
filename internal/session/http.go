package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsukihara/workshelf/internal/platform/apperr"
	"github.com/tsukihara/workshelf/internal/platform/respond"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getStatus)
	router.Post("/login", handler.login)
	router.Put("/token", handler.putToken)
	router.Delete("/", handler.logout)
	return router
}

// getStatus handles GET /session.
func (handler *Handler) getStatus(writer http.ResponseWriter, request *http.Request) {
	status, err := handler.manager.Status(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]Status{"status": status})
}

// login handles POST /session/login. It blocks until the interactive login
// surface completes or is abandoned.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	if err := handler.manager.CaptureLogin(request.Context()); err != nil {
		if errors.Is(err, ErrLoginAborted) {
			respond.Error(writer, request, apperr.Conflict("Login was not completed"))
			return
		}
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]Status{"status": StatusValid})
}

// putToken handles PUT /session/token: out-of-band token provisioning for
// headless deployments without an interactive login surface.
func (handler *Handler) putToken(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Malformed token payload"))
		return
	}
	if payload.Token == "" {
		respond.Error(writer, request, apperr.ValidationError("Token must not be empty"))
		return
	}

	if err := handler.manager.Adopt(request.Context(), payload.Token); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]Status{"status": StatusValid})
}

// logout handles DELETE /session.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.manager.Invalidate(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
