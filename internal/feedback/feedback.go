// Package feedback defines the single-character codes sent back to the
// control device. The firmware maps them onto LED patterns, so the
// exact characters are part of the device contract.
package feedback

import "snakes-ladders-backend/internal/engine"

type Signal string

const (
	Success    Signal = "1" // congratulations pattern
	Warning    Signal = "2" // warning pattern
	Winner     Signal = "3" // winner pattern
	AckAdvance Signal = "4" // immediate ack, left button
	AckConfirm Signal = "5" // immediate ack, right button
)

// Ack returns the immediate per-press acknowledgment for an input. It
// is sent before the input is applied, independent of outcome.
func Ack(in engine.Input) Signal {
	if in == engine.Confirm {
		return AckConfirm
	}
	return AckAdvance
}

// ForEvent maps an engine event to its outcome signal. Most events
// carry no device feedback.
func ForEvent(ev engine.Event) (Signal, bool) {
	switch ev.Type {
	case engine.EvtAnswerCorrect:
		return Success, true
	case engine.EvtAnswerWrong:
		return Warning, true
	case engine.EvtGameWon:
		return Winner, true
	default:
		return "", false
	}
}
