package httpapi

import (
	"encoding/json"
	"net/http"

	"snakes-ladders-backend/internal/session"
	"snakes-ladders-backend/internal/types"
)

// CurrentState dumps the live snapshot plus client counts. Read-only;
// it goes through the session inbox like everything else, so it can
// never observe a half-applied input.
func CurrentState(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan session.View, 1)
		sess.Inbox() <- session.GetView{Reply: reply}

		select {
		case view := <-reply:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(struct {
				Version     int             `json:"version"`
				NumDisplays int             `json:"num_displays"`
				NumControls int             `json:"num_controls"`
				State       types.GameState `json:"state"`
			}{
				Version:     view.Version,
				NumDisplays: view.NumDisplays,
				NumControls: view.NumControls,
				State:       view.State,
			})
		case <-r.Context().Done():
			http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		}
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
