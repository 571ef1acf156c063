package types

// Control device -> Server (route /esp32, one character per text frame)
// "0": ADVANCE  (left button)
// "1": CONFIRM  (right button)
// anything else: ignored
//
// Server -> Control device (one character per text frame)
// "4": immediate ack, ADVANCE pressed
// "5": immediate ack, CONFIRM pressed
// "1": success / congratulations pattern
// "2": failure / warning pattern
// "3": winner pattern
//
// Display -> Server (default route, JSON)
// RequestState:
//   { "type": "request_state" }
// Triggers a unicast resend of the current snapshot to that connection
// only. No other display-originated message types exist; unparseable
// payloads terminate that connection's read loop.
//
// Server -> Display (JSON)
// GameState:
//   { "type": "game_state", "state": <snapshot, see snapshot.go> }
// Sent immediately when a display connects and after every processed
// control input.
