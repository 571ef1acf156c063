package types

// GameState snapshot:
//   screen: "main" | "customize" | "game" | "end"
//   num_players: 2..4
//   players: [{ id: number, color: "#RRGGBB", position: 0..100 }]
//   current_turn: index into players
//   dice_value: 0 or last roll 1..6
//   waiting_for_move: boolean
//   winner: player index | null
//   current_player_setup: players configured so far (customize)
//   selected_color_index: 0..7 into the palette (customize)
//   question_active: boolean
//   current_question: { question: string, options: [4 strings] } // no answer index
//   question_type: "ladder" | "snake"
//   selected_answer: 0..3
//   board: { ladders: { start: end }, snakes: { start: end } }
