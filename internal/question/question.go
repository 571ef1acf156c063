package question

import "math/rand/v2"

// Question is one multiple-choice trivia item. The correct index never
// goes on the wire; displays only render the prompt and options.
type Question struct {
	Prompt  string    `json:"question"`
	Options [4]string `json:"options"`
	Correct int       `json:"-"`
}

// Bank is a fixed set of questions drawn from uniformly, with
// replacement.
type Bank struct {
	items []Question
}

// NewBank copies items into a Bank. Intended for tests; production code
// uses DefaultBank.
func NewBank(items []Question) *Bank {
	b := &Bank{items: make([]Question, len(items))}
	copy(b.items, items)
	return b
}

// Draw picks one question uniformly at random. The returned value is a
// copy; mutating it does not touch the bank.
func (b *Bank) Draw() Question {
	return b.items[rand.IntN(len(b.items))]
}

// Len reports the bank size.
func (b *Bank) Len() int { return len(b.items) }

// DefaultBank returns the built-in educational bank.
func DefaultBank() *Bank {
	return NewBank(defaultItems)
}

var defaultItems = []Question{
	{
		Prompt:  "¿Cuánto es 7 x 8?",
		Options: [4]string{"54", "56", "64", "48"},
		Correct: 1,
	},
	{
		Prompt:  "¿Cuál es el planeta más cercano al Sol?",
		Options: [4]string{"Venus", "Marte", "Mercurio", "Júpiter"},
		Correct: 2,
	},
	{
		Prompt:  "¿Cuántos lados tiene un hexágono?",
		Options: [4]string{"5", "6", "7", "8"},
		Correct: 1,
	},
	{
		Prompt:  "¿Cuál es la capital de Francia?",
		Options: [4]string{"Londres", "Madrid", "París", "Roma"},
		Correct: 2,
	},
	{
		Prompt:  "¿Qué gas respiramos para vivir?",
		Options: [4]string{"Oxígeno", "Hidrógeno", "Nitrógeno", "Helio"},
		Correct: 0,
	},
	{
		Prompt:  "¿Cuánto es 144 ÷ 12?",
		Options: [4]string{"11", "14", "12", "10"},
		Correct: 2,
	},
	{
		Prompt:  "¿Cuál es el océano más grande?",
		Options: [4]string{"Atlántico", "Índico", "Ártico", "Pacífico"},
		Correct: 3,
	},
	{
		Prompt:  "¿Cuántos minutos tiene una hora?",
		Options: [4]string{"60", "100", "90", "45"},
		Correct: 0,
	},
	{
		Prompt:  "¿Qué animal es el más grande del mundo?",
		Options: [4]string{"Elefante", "Ballena azul", "Jirafa", "Tiburón blanco"},
		Correct: 1,
	},
	{
		Prompt:  "¿Cuál es el resultado de 9 + 6?",
		Options: [4]string{"14", "16", "15", "13"},
		Correct: 2,
	},
	{
		Prompt:  "¿En qué continente está Egipto?",
		Options: [4]string{"Asia", "África", "Europa", "Oceanía"},
		Correct: 1,
	},
	{
		Prompt:  "¿Cuántas patas tiene una araña?",
		Options: [4]string{"6", "10", "8", "12"},
		Correct: 2,
	},
}
