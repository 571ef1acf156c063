package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"snakes-ladders-backend/internal/session"
	"snakes-ladders-backend/internal/ws"
)

// SetupRoutes wires the two connection roles and the ops endpoints.
// The control device connects on /esp32; everything else on / is a
// display.
func SetupRoutes(sess *session.Session, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/state", CurrentState(sess))
	r.Get("/esp32", ws.Control(sess, log))
	r.Get("/", ws.Display(sess, log))
	return r
}
