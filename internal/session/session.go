// Package session hosts the single authoritative game session as an
// actor: one goroutine owns the state, everything else talks to it
// through the inbox. Control inputs are therefore serialized by
// construction, including across the animation suspension inside a
// move.
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"snakes-ladders-backend/internal/engine"
	"snakes-ladders-backend/internal/feedback"
	"snakes-ladders-backend/internal/types"
)

// DefaultAnimStep is the per-square suspension between the move
// checkpoint and shortcut resolution; displays animate one square every
// 200ms, so the server paces resolution the same way.
const DefaultAnimStep = 200 * time.Millisecond

type Msg interface{ isSessionMsg() }

type JoinDisplay struct {
	ClientID string
	Outbox   chan Snapshot // where this display wants to receive snapshots
}

func (JoinDisplay) isSessionMsg() {}

type LeaveDisplay struct{ ClientID string }

func (LeaveDisplay) isSessionMsg() {}

type JoinControl struct {
	ClientID string
	Outbox   chan feedback.Signal
}

func (JoinControl) isSessionMsg() {}

type LeaveControl struct{ ClientID string }

func (LeaveControl) isSessionMsg() {}

type FromControl struct{ In engine.Input }

func (FromControl) isSessionMsg() {}

// RequestState asks for a unicast resend of the current snapshot. It
// never mutates state.
type RequestState struct{ ClientID string }

func (RequestState) isSessionMsg() {}

// GetView reflects internal state without data races; used by tests and
// the /state endpoint.
type GetView struct{ Reply chan View }

func (GetView) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// Snapshot is one broadcast frame. Version is a broadcast sequence
// number, bumped once per processed input plus once per move-resolution
// follow-up; it stays server-internal.
type Snapshot struct {
	Version int
	State   types.GameState
}

type View struct {
	Version     int
	NumDisplays int
	NumControls int
	State       types.GameState
}

type Session struct {
	inbox    chan Msg
	eng      *engine.Engine
	state    engine.State
	version  int
	displays map[string]chan Snapshot
	controls map[string]chan feedback.Signal
	animStep time.Duration
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(parent context.Context, eng *engine.Engine, log *zap.Logger, animStep time.Duration) *Session {
	ctx, cancel := context.WithCancel(parent)

	s := &Session{
		inbox:    make(chan Msg, 64),
		eng:      eng,
		state:    engine.NewState(),
		displays: make(map[string]chan Snapshot),
		controls: make(map[string]chan feedback.Signal),
		animStep: animStep,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}

	go s.loop()
	return s
}

// Inbox exposes the actor mailbox to the WS layer and tests.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case JoinDisplay:
				// Register + send the current snapshot immediately so
				// the display can leave its loading screen.
				s.displays[msg.ClientID] = msg.Outbox
				msg.Outbox <- s.snapshot()
				s.log.Info("display connected", zap.String("client", msg.ClientID))

			case LeaveDisplay:
				// Close the outbox so the connection's writer goroutine
				// exits; the entry may already be gone if the client was
				// dropped as slow.
				if ch, ok := s.displays[msg.ClientID]; ok {
					close(ch)
					delete(s.displays, msg.ClientID)
				}
				s.log.Info("display disconnected", zap.String("client", msg.ClientID))

			case JoinControl:
				s.controls[msg.ClientID] = msg.Outbox
				s.log.Info("control device connected", zap.String("client", msg.ClientID))

			case LeaveControl:
				if ch, ok := s.controls[msg.ClientID]; ok {
					close(ch)
					delete(s.controls, msg.ClientID)
				}
				s.log.Info("control device disconnected", zap.String("client", msg.ClientID))

			case FromControl:
				s.handleInput(msg.In)

			case RequestState:
				if ch, ok := s.displays[msg.ClientID]; ok {
					s.send(msg.ClientID, ch, s.snapshot())
				}

			case GetView:
				msg.Reply <- View{
					Version:     s.version,
					NumDisplays: len(s.displays),
					NumControls: len(s.controls),
					State:       s.snapshot().State,
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

// handleInput runs one full button press: ack, apply, broadcast, and
// for a committed move the checkpoint/suspend/resolve sequence. The
// whole thing happens on the actor goroutine, so inputs arriving during
// the suspension queue up in the inbox instead of interleaving.
func (s *Session) handleInput(in engine.Input) {
	s.signalControls(feedback.Ack(in))

	events, next := s.eng.Apply(s.state, in)
	s.state = next
	s.version++
	s.broadcast()

	if engine.ContainsEvent(events, engine.EvtMoveCommitted) {
		if s.animStep > 0 {
			for _, ev := range events {
				if ev.Type == engine.EvtMoveCommitted {
					time.Sleep(time.Duration(ev.Dice) * s.animStep)
					break
				}
			}
		}

		more, resolved := s.eng.Resolve(s.state)
		s.state = resolved
		s.version++
		s.broadcast()
		events = append(events, more...)
	}

	for _, ev := range events {
		if ev.Type == engine.EvtInputIgnored {
			s.log.Debug("input ignored",
				zap.String("input", string(in)),
				zap.String("reason", ev.Reason))
			continue
		}
		if sig, ok := feedback.ForEvent(ev); ok {
			s.signalControls(sig)
		}
	}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{Version: s.version, State: types.FromState(s.state, s.eng.Board)}
}

func (s *Session) broadcast() {
	snap := s.snapshot()
	for id, ch := range s.displays {
		s.send(id, ch, snap)
	}
}

func (s *Session) send(id string, ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
	default:
		// Display is slow or stuck - drop it. It can reconnect and
		// request_state its way back.
		close(ch)
		delete(s.displays, id)
		s.log.Warn("dropping slow display client", zap.String("client", id))
	}
}

func (s *Session) signalControls(sig feedback.Signal) {
	for id, ch := range s.controls {
		select {
		case ch <- sig:
		default:
			close(ch)
			delete(s.controls, id)
			s.log.Warn("dropping slow control client", zap.String("client", id))
		}
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.displays {
		close(ch)
		delete(s.displays, id)
	}
	for id, ch := range s.controls {
		close(ch)
		delete(s.controls, id)
	}
	s.cancel()
}
