package engine

import (
	"math/rand/v2"

	"snakes-ladders-backend/internal/board"
	"snakes-ladders-backend/internal/question"
)

type EventType string

const (
	EvtMoveCommitted EventType = "MoveCommitted"
	EvtQuestionAsked EventType = "QuestionAsked"
	EvtAnswerCorrect EventType = "AnswerCorrect"
	EvtAnswerWrong   EventType = "AnswerWrong"
	EvtGameWon       EventType = "GameWon"
	EvtInputIgnored  EventType = "InputIgnored"
)

type Event struct {
	Type   EventType
	Player int
	Dice   int
	Square int
	Kind   QuestionKind
	Reason string
}

// Engine evaluates control inputs against the current State. Roll and
// Draw are injectable so tests can fix dice values and questions.
type Engine struct {
	Board board.Model
	Roll  func() int
	Draw  func() question.Question
}

func New(b board.Model, bank *question.Bank) *Engine {
	return &Engine{
		Board: b,
		Roll:  func() int { return rand.IntN(6) + 1 },
		Draw:  bank.Draw,
	}
}

// Apply processes one input and returns the events it produced plus the
// successor state. It never fails: invalid inputs for the current
// screen or sub-phase come back as EvtInputIgnored with the state
// unchanged. A Confirm on a pending roll only commits the move
// (EvtMoveCommitted); the caller broadcasts that checkpoint, waits out
// the animation, then calls Resolve to finish the move.
func (e *Engine) Apply(s State, in Input) ([]Event, State) {
	switch s.Screen {
	case ScreenMain:
		return e.applyMain(s, in)
	case ScreenCustomize:
		return e.applyCustomize(s, in)
	case ScreenGame:
		return e.applyGame(s, in)
	case ScreenEnd:
		return e.applyEnd(s, in)
	default:
		return ignored("unknown screen"), s
	}
}

func (e *Engine) applyMain(s State, in Input) ([]Event, State) {
	next := s
	switch in {
	case Advance:
		// Player count cycles 2 -> 3 -> 4 -> 2.
		next.NumPlayers++
		if next.NumPlayers > 4 {
			next.NumPlayers = 2
		}
	case Confirm:
		next.Screen = ScreenCustomize
		next.Players = []Player{}
		next.SetupCount = 0
		next.ColorIndex = 0
	}
	return nil, next
}

func (e *Engine) applyCustomize(s State, in Input) ([]Event, State) {
	next := s
	switch in {
	case Advance:
		next.ColorIndex = (s.ColorIndex + 1) % len(Palette)
	case Confirm:
		color := Palette[s.ColorIndex]
		if colorTaken(s.Players, color) {
			return ignored("color already taken"), s
		}
		next.Players = append(clonePlayers(s.Players), Player{
			ID:    len(s.Players),
			Color: color,
		})
		next.SetupCount = s.SetupCount + 1
		next.ColorIndex = 0
		if next.SetupCount == next.NumPlayers {
			next.Screen = ScreenGame
			next.CurrentTurn = 0
		}
	}
	return nil, next
}

func (e *Engine) applyGame(s State, in Input) ([]Event, State) {
	if len(s.Players) == 0 {
		return ignored("game screen with no players"), s
	}

	if s.Pending != nil {
		return e.applyQuestion(s, in)
	}

	next := s
	if s.WaitingForMove {
		switch in {
		case Advance:
			return ignored("already rolled, confirm to move"), s
		case Confirm:
			// Commit the clamped position only. Shortcut and win
			// resolution happen in Resolve, after the animation
			// checkpoint broadcast.
			newPos := s.currentPlayer().Position + s.DiceValue
			if newPos > 100 {
				newPos = 100
			}
			next.Players = clonePlayers(s.Players)
			next.Players[s.CurrentTurn].Position = newPos
			return []Event{{
				Type:   EvtMoveCommitted,
				Player: s.CurrentTurn,
				Dice:   s.DiceValue,
				Square: newPos,
			}}, next
		}
		return nil, s
	}

	switch in {
	case Advance:
		next.DiceValue = e.Roll()
		next.WaitingForMove = true
	case Confirm:
		return ignored("cannot move before rolling"), s
	}
	return nil, next
}

// Resolve finishes a committed move: shortcut lookup, question entry,
// win check, turn advance. Meant to be called right after Apply
// returned EvtMoveCommitted; anything else is a defensive no-op.
func (e *Engine) Resolve(s State) ([]Event, State) {
	if s.Screen != ScreenGame || !s.WaitingForMove || s.Pending != nil {
		return ignored("no move to resolve"), s
	}
	player := s.currentPlayer()
	if player == nil {
		return ignored("game screen with no players"), s
	}

	if _, ok := e.Board.LadderEnd(player.Position); ok {
		return e.askQuestion(s, KindLadder, player.Position)
	}
	if _, ok := e.Board.SnakeEnd(player.Position); ok {
		return e.askQuestion(s, KindSnake, player.Position)
	}

	next := s
	var events []Event
	finishTurn(&next, &events)
	return events, next
}

func (e *Engine) askQuestion(next State, kind QuestionKind, square int) ([]Event, State) {
	next.Pending = &PendingQuestion{
		Question:      e.Draw(),
		Kind:          kind,
		TriggerSquare: square,
	}
	return []Event{{
		Type:   EvtQuestionAsked,
		Player: next.CurrentTurn,
		Kind:   kind,
		Square: square,
	}}, next
}

func (e *Engine) applyQuestion(s State, in Input) ([]Event, State) {
	next := s
	switch in {
	case Advance:
		p := *s.Pending
		p.Selected = (p.Selected + 1) % 4
		next.Pending = &p
		return nil, next
	case Confirm:
		p := s.Pending
		correct := p.Selected == p.Question.Correct

		var events []Event
		if correct {
			events = append(events, Event{Type: EvtAnswerCorrect, Player: s.CurrentTurn, Kind: p.Kind})
		} else {
			events = append(events, Event{Type: EvtAnswerWrong, Player: s.CurrentTurn, Kind: p.Kind})
		}

		// Ladder climbs on a correct answer; snake bites on a wrong
		// one. The other two combinations leave the player on the
		// trigger square.
		next.Players = clonePlayers(s.Players)
		switch {
		case p.Kind == KindLadder && correct:
			next.Players[s.CurrentTurn].Position = e.Board.Ladders[p.TriggerSquare]
		case p.Kind == KindSnake && !correct:
			next.Players[s.CurrentTurn].Position = e.Board.Snakes[p.TriggerSquare]
		}

		next.Pending = nil
		finishTurn(&next, &events)
		return events, next
	}
	return nil, s
}

func (e *Engine) applyEnd(s State, in Input) ([]Event, State) {
	if len(s.Players) == 0 {
		return ignored("end screen with no players"), s
	}
	switch in {
	case Advance:
		// Rematch: keep the player count, back to color selection.
		return nil, State{Screen: ScreenCustomize, NumPlayers: s.NumPlayers, Players: []Player{}}
	case Confirm:
		return nil, NewState()
	}
	return nil, s
}

// finishTurn applies the shared end-of-move logic: declare a winner at
// square 100 or hand the turn to the next player, then clear the roll.
func finishTurn(next *State, events *[]Event) {
	if p := next.currentPlayer(); p != nil && p.Position >= 100 {
		w := next.CurrentTurn
		next.Winner = &w
		next.Screen = ScreenEnd
		*events = append(*events, Event{Type: EvtGameWon, Player: w})
	} else {
		next.CurrentTurn = (next.CurrentTurn + 1) % next.NumPlayers
	}
	next.WaitingForMove = false
	next.DiceValue = 0
}

func ignored(reason string) []Event {
	return []Event{{Type: EvtInputIgnored, Reason: reason}}
}

// ContainsEvent reports whether events holds an event of the given type.
func ContainsEvent(events []Event, t EventType) bool {
	for _, ev := range events {
		if ev.Type == t {
			return true
		}
	}
	return false
}
