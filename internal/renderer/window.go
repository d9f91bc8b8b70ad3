package renderer

import "fmt"

// Window is the rendering collaborator the frame loop drives.
type Window interface {
	// PollEvent returns the next queued event without blocking. The second
	// return value is false once the queue is empty for this call.
	PollEvent() (Event, bool)
	IsOpen() bool
	// Close is idempotent.
	Close()
	Clear(Color)
	Draw(Drawable)
	Display()
}

type EventKind int

const (
	EventOther EventKind = iota
	EventClosed
	EventKeyPressed
	EventResized
)

type Event struct {
	Kind EventKind
	Code Key
}

// VideoMode describes the logical window the world is laid out in.
type VideoMode struct {
	Width        int
	Height       int
	BitsPerPixel int
}

func (m VideoMode) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid video mode size %dx%d", m.Width, m.Height)
	}
	if m.BitsPerPixel <= 0 {
		return fmt.Errorf("invalid video mode color depth %d", m.BitsPerPixel)
	}
	return nil
}

// World returns the size of the mode as a vector.
func (m VideoMode) World() Vector {
	return Vector{X: float32(m.Width), Y: float32(m.Height)}
}

// TrueColor reports whether the mode can show 24 bit colors.
func (m VideoMode) TrueColor() bool {
	return m.BitsPerPixel >= 24
}
