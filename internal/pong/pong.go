package pong

import (
	"fmt"

	"golang.org/x/exp/rand"

	"termpong/internal/renderer"
)

// Window defaults
const (
	WindowWidth  = 1024
	WindowHeight = 768
	PixelDepth   = 32
	WindowTitle  = "Pong - Go"

	PaddleWidth  = 20
	PaddleHeight = 50
)

// Game option defaults
const (
	PaddlePadding  float32 = 30
	PaddleVelocity float32 = 5

	BallRadius           float32 = 10
	BallOutlineThickness float32 = 3
	BallSpeed            float32 = 5
)

var (
	UpVector   = renderer.Vector{X: 0, Y: -1 * PaddleVelocity}
	DownVector = renderer.Vector{X: 0, Y: 1 * PaddleVelocity}

	VideoMode = renderer.VideoMode{Width: WindowWidth, Height: WindowHeight, BitsPerPixel: PixelDepth}

	ClearColor        = renderer.White
	BallFillColor     = renderer.Red
	BallOutlineColor  = renderer.Magenta
	BallStartPosition = renderer.Vector{X: WindowWidth / 2, Y: WindowHeight / 2}
)

const (
	lhsStartX    = PaddlePadding
	rhsStartX    = WindowWidth - PaddlePadding - PaddleWidth
	topStartY    = PaddlePadding
	bottomStartY = WindowHeight - PaddlePadding - PaddleHeight
)

// startPositions holds the four canonical paddle slots: left-top,
// right-top, left-bottom, right-bottom. Ids index into it directly.
var startPositions = [4]renderer.Vector{
	BluePaddle:  {X: lhsStartX, Y: topStartY},
	GreenPaddle: {X: rhsStartX, Y: topStartY},
	2:           {X: lhsStartX, Y: bottomStartY},
	3:           {X: rhsStartX, Y: bottomStartY},
}

// StartPosition returns the fixed spawn point of a player's paddle.
func (id PlayerId) StartPosition() renderer.Vector {
	return startPositions[id]
}

type Action int

const (
	NoAction Action = iota
	CloseWindow
	MoveUp
	MoveDown
)

// Bindings maps key codes to the action they trigger.
var Bindings = map[renderer.Key]Action{
	renderer.KeyEscape: CloseWindow,
	renderer.KeyK:      MoveUp,
	renderer.KeyUp:     MoveUp,
	renderer.KeyJ:      MoveDown,
	renderer.KeyDown:   MoveDown,
}

// NextState builds the snapshot following prev. Buffered keys are applied to
// the controlled paddle in the order they were pressed, each translation
// adding to the last. The ball advances by its velocity and the returned
// snapshot has an empty key buffer. prev is left untouched; a close key is
// the only effect outside the returned value.
func NextState(prev GameState, w Closer) GameState {
	if prev.playerId < 0 || int(prev.playerId) >= len(prev.paddles) {
		panic(fmt.Sprintf("player %v has no paddle, %d paddles exist", prev.playerId, len(prev.paddles)))
	}

	next := GameState{
		paddles:  append([]Paddle(nil), prev.paddles...),
		playerId: prev.playerId,
		ball:     prev.ball,
	}

	paddle := &next.paddles[next.playerId]
	for _, key := range prev.keys {
		switch Bindings[key] {
		case CloseWindow:
			w.Close()
		case MoveUp:
			paddle.Sprite = paddle.Sprite.Move(UpVector)
		case MoveDown:
			paddle.Sprite = paddle.Sprite.Move(DownVector)
		}
	}

	next.ball.Shape = next.ball.Shape.Move(next.ball.Velocity.Scale(BallSpeed))

	return next
}

// NewBall creates the ball at the center of the window with a velocity drawn
// uniformly from [-1, 1) on both axes.
func NewBall(rng *rand.Rand) Ball {
	return Ball{
		Shape: renderer.CircleShape{
			Radius:           BallRadius,
			OutlineThickness: BallOutlineThickness,
			FillColor:        BallFillColor,
			OutlineColor:     BallOutlineColor,
			Position:         BallStartPosition,
		},
		Velocity: renderer.Vector{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
		},
	}
}

// NewPaddles builds one paddle per player, in Players order, each at its
// start position. The textures must outlive the paddles.
func NewPaddles(textures map[PlayerId]*renderer.Texture) ([]Paddle, error) {
	paddles := make([]Paddle, 0, len(Players))
	for _, id := range Players {
		sprite, err := renderer.NewSprite(textures[id])
		if err != nil {
			return nil, fmt.Errorf("could not create sprite for %v paddle: %w", id, err)
		}
		sprite.Position = id.StartPosition()
		paddles = append(paddles, Paddle{Sprite: sprite})
	}
	return paddles, nil
}
