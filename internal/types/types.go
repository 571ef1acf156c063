package types

import (
	"snakes-ladders-backend/internal/board"
	"snakes-ladders-backend/internal/engine"
	"snakes-ladders-backend/internal/question"
)

const (
	MsgRequestState = "request_state"
	MsgGameState    = "game_state"
)

// ClientMessage is the only message shape display clients may send.
type ClientMessage struct {
	Type string `json:"type"`
}

// ServerMessage wraps every display-bound frame.
type ServerMessage struct {
	Type  string     `json:"type"`
	State *GameState `json:"state,omitempty"`
}

// GameState is the wire form of the authoritative state. Field names
// match what the display frontend reads; the static board rides along
// in every snapshot because displays render shortcut squares from it.
type GameState struct {
	Screen             string             `json:"screen"`
	NumPlayers         int                `json:"num_players"`
	Players            []engine.Player    `json:"players"`
	CurrentTurn        int                `json:"current_turn"`
	DiceValue          int                `json:"dice_value"`
	WaitingForMove     bool               `json:"waiting_for_move"`
	Winner             *int               `json:"winner"`
	CurrentPlayerSetup int                `json:"current_player_setup"`
	SelectedColorIndex int                `json:"selected_color_index"`
	QuestionActive     bool               `json:"question_active"`
	CurrentQuestion    *question.Question `json:"current_question,omitempty"`
	QuestionType       string             `json:"question_type,omitempty"`
	SelectedAnswer     int                `json:"selected_answer"`
	Board              board.Model        `json:"board"`
}

// FromState flattens an engine.State into its wire form. Players are
// copied so a snapshot stays stable after the engine moves on, and the
// players array is never null on the wire.
func FromState(s engine.State, b board.Model) GameState {
	players := make([]engine.Player, len(s.Players))
	copy(players, s.Players)

	gs := GameState{
		Screen:             string(s.Screen),
		NumPlayers:         s.NumPlayers,
		Players:            players,
		CurrentTurn:        s.CurrentTurn,
		DiceValue:          s.DiceValue,
		WaitingForMove:     s.WaitingForMove,
		Winner:             s.Winner,
		CurrentPlayerSetup: s.SetupCount,
		SelectedColorIndex: s.ColorIndex,
		Board:              b,
	}
	if s.Pending != nil {
		q := s.Pending.Question
		gs.QuestionActive = true
		gs.CurrentQuestion = &q
		gs.QuestionType = string(s.Pending.Kind)
		gs.SelectedAnswer = s.Pending.Selected
	}
	return gs
}
