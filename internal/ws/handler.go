package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"snakes-ladders-backend/internal/engine"
	"snakes-ladders-backend/internal/feedback"
	"snakes-ladders-backend/internal/session"
	"snakes-ladders-backend/internal/types"
)

const writeTimeout = 3 * time.Second

// Display handles the default route: passive clients that render state
// snapshots. Reads have no deadline; an idle display stays connected
// until it goes away.
func Display(sess *session.Session, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// A display served off a dev host is the only cross-origin
			// client; everything else falls under the default check.
			OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		out := make(chan session.Snapshot, 8)

		sess.Inbox() <- session.JoinDisplay{ClientID: clientID, Outbox: out}
		defer func() { sess.Inbox() <- session.LeaveDisplay{ClientID: clientID} }()

		// Writer goroutine: drains the outbox until the session closes
		// it or the connection dies.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				msg := types.ServerMessage{Type: types.MsgGameState, State: &snap.State}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				// Malformed payloads end this read loop only; nothing
				// is reported back on the display protocol.
				log.Warn("malformed display message",
					zap.String("client", clientID), zap.Error(err))
				return
			}

			switch cm.Type {
			case types.MsgRequestState:
				sess.Inbox() <- session.RequestState{ClientID: clientID}
			default:
				log.Debug("unknown display message type",
					zap.String("client", clientID), zap.String("type", cm.Type))
			}
		}
	}
}

// Control handles the /esp32 route: the physical two-button device.
// Inbound frames are single characters; outbound frames are the
// feedback codes its firmware turns into LED patterns.
func Control(sess *session.Session, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The device sends no Origin header, so the default origin
		// check passes for it and still blocks browser cross-origin use.
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		out := make(chan feedback.Signal, 8)

		sess.Inbox() <- session.JoinControl{ClientID: clientID, Outbox: out}
		defer func() { sess.Inbox() <- session.LeaveControl{ClientID: clientID} }()

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for sig := range out {
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				_ = conn.Write(ctx, websocket.MessageText, []byte(sig))
				cancel()
			}
		}()

		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				return
			}

			in, ok := parseInput(string(data))
			if !ok {
				// Unrecognized control bytes are ignored, not fatal.
				log.Debug("unrecognized control payload",
					zap.String("client", clientID), zap.String("payload", string(data)))
				continue
			}
			sess.Inbox() <- session.FromControl{In: in}
		}
	}
}

func parseInput(payload string) (engine.Input, bool) {
	switch payload {
	case "0":
		return engine.Advance, true
	case "1":
		return engine.Confirm, true
	default:
		return "", false
	}
}
