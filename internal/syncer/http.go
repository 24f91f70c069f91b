package syncer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsukihara/workshelf/internal/platform/respond"
)

type Handler struct {
	syncer *Syncer
}

func NewHandler(syncer *Syncer) *Handler {
	return &Handler{syncer: syncer}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.runSync)
	return router
}

// runSync handles POST /sync. The full report streams back once the run
// completes; long runs are bounded by the global request timeout.
func (handler *Handler) runSync(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.syncer.Sync(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}
