package engine

import "snakes-ladders-backend/internal/question"

type Screen string

const (
	ScreenMain      Screen = "main"
	ScreenCustomize Screen = "customize"
	ScreenGame      Screen = "game"
	ScreenEnd       Screen = "end"
)

// Input is one of the two abstract control-device buttons.
type Input string

const (
	Advance Input = "advance" // left button: navigate / roll / cycle
	Confirm Input = "confirm" // right button: select / move / answer
)

// Palette is the fixed 8-color set players choose from. Order matters:
// colorPickerIndex indexes into it and displays show the same order.
var Palette = [8]string{
	"#FF0000", "#00FF00", "#0000FF", "#FFFF00",
	"#FF00FF", "#00FFFF", "#FFA500", "#800080",
}

type Player struct {
	ID       int    `json:"id"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

type QuestionKind string

const (
	KindLadder QuestionKind = "ladder"
	KindSnake  QuestionKind = "snake"
)

// PendingQuestion exists only while a player is answering the trivia
// gate for a shortcut square they just landed on.
type PendingQuestion struct {
	Question      question.Question
	Kind          QuestionKind
	TriggerSquare int
	Selected      int
}

// State is the full authoritative session state. Exactly one instance
// lives inside the session actor; the engine never mutates its input,
// it returns a successor value.
type State struct {
	Screen         Screen
	NumPlayers     int
	Players        []Player
	CurrentTurn    int
	DiceValue      int
	WaitingForMove bool
	Winner         *int
	Pending        *PendingQuestion
	ColorIndex     int
	SetupCount     int
}

// NewState returns the boot state: main screen, two players proposed.
func NewState() State {
	return State{Screen: ScreenMain, NumPlayers: 2}
}

func (s State) currentPlayer() *Player {
	if s.CurrentTurn < 0 || s.CurrentTurn >= len(s.Players) {
		return nil
	}
	return &s.Players[s.CurrentTurn]
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}

func colorTaken(players []Player, color string) bool {
	for _, p := range players {
		if p.Color == color {
			return true
		}
	}
	return false
}
