package pong

import (
	"fmt"

	"termpong/internal/renderer"
)

type PlayerId int

const (
	BluePaddle PlayerId = iota
	GreenPaddle
)

// Players lists every player id in paddle collection order.
var Players = []PlayerId{BluePaddle, GreenPaddle}

func (id PlayerId) String() string {
	switch id {
	case BluePaddle:
		return "blue"
	case GreenPaddle:
		return "green"
	}
	return fmt.Sprintf("player(%d)", int(id))
}

func (id *PlayerId) UnmarshalText(text []byte) error {
	switch string(text) {
	case "blue":
		*id = BluePaddle
	case "green":
		*id = GreenPaddle
	default:
		return fmt.Errorf("unknown player: %s", text)
	}
	return nil
}

type Paddle struct {
	Sprite renderer.Sprite
}

type Ball struct {
	Shape    renderer.CircleShape
	Velocity renderer.Vector
}

// GameState is an immutable snapshot of one frame. Accessors return copies;
// every change produces a new GameState.
type GameState struct {
	paddles  []Paddle
	playerId PlayerId
	ball     Ball
	keys     []renderer.Key
}

// NewGameState panics if playerId does not index a paddle.
func NewGameState(paddles []Paddle, playerId PlayerId, ball Ball) GameState {
	if playerId < 0 || int(playerId) >= len(paddles) {
		panic(fmt.Sprintf("player %v has no paddle, %d paddles exist", playerId, len(paddles)))
	}
	return GameState{
		paddles:  append([]Paddle(nil), paddles...),
		playerId: playerId,
		ball:     ball,
	}
}

func (s GameState) Paddles() []Paddle {
	return append([]Paddle(nil), s.paddles...)
}

func (s GameState) Paddle(id PlayerId) Paddle {
	return s.paddles[id]
}

func (s GameState) PlayerId() PlayerId {
	return s.playerId
}

func (s GameState) Ball() Ball {
	return s.ball
}

// Keys returns the buffered key codes in the order they were pressed.
func (s GameState) Keys() []renderer.Key {
	return append([]renderer.Key(nil), s.keys...)
}

// WithKeys returns a snapshot with keys appended to the buffer.
func (s GameState) WithKeys(keys ...renderer.Key) GameState {
	next := s
	next.keys = make([]renderer.Key, 0, len(s.keys)+len(keys))
	next.keys = append(next.keys, s.keys...)
	next.keys = append(next.keys, keys...)
	return next
}
