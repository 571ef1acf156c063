package board

// Model holds the static shortcut tables for the 100-square board.
// Ladder values climb (end > start), snake values fall (end < start).
// Generated once at startup and read-only afterwards.
type Model struct {
	Ladders map[int]int `json:"ladders"`
	Snakes  map[int]int `json:"snakes"`
}

var ladderTable = map[int]int{
	3:  22,
	8:  30,
	28: 84,
	36: 57,
	43: 77,
	54: 88,
	62: 81,
	71: 92,
	80: 99,
}

var snakeTable = map[int]int{
	16: 6,
	31: 14,
	39: 21,
	48: 26,
	65: 52,
	74: 45,
	85: 59,
	95: 66,
	98: 77,
}

// Generate builds a fresh Model from the fixed tables. Callers own the
// returned maps; the package tables are never handed out directly.
func Generate() Model {
	m := Model{
		Ladders: make(map[int]int, len(ladderTable)),
		Snakes:  make(map[int]int, len(snakeTable)),
	}
	for start, end := range ladderTable {
		m.Ladders[start] = end
	}
	for start, end := range snakeTable {
		m.Snakes[start] = end
	}
	return m
}

// LadderEnd reports where the ladder starting at square leads, if any.
func (m Model) LadderEnd(square int) (int, bool) {
	end, ok := m.Ladders[square]
	return end, ok
}

// SnakeEnd reports where the snake starting at square leads, if any.
func (m Model) SnakeEnd(square int) (int, bool) {
	end, ok := m.Snakes[square]
	return end, ok
}
