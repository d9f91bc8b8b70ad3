package renderer

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimWindow(t *testing.T) (*TcellWindow, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	w, err := NewTcellWindow(screen, VideoMode{Width: 100, Height: 100, BitsPerPixel: 32}, "test")
	require.NoError(t, err)
	screen.SetSize(10, 10)
	t.Cleanup(w.Close)
	return w, screen
}

// waitKey polls w until a key or close event shows up.
func waitKey(t *testing.T, w *TcellWindow) Event {
	t.Helper()
	var got Event
	require.Eventually(t, func() bool {
		for {
			ev, ok := w.PollEvent()
			if !ok {
				return false
			}
			if ev.Kind == EventKeyPressed || ev.Kind == EventClosed {
				got = ev
				return true
			}
		}
	}, time.Second, time.Millisecond)
	return got
}

func TestNewTcellWindow_InvalidMode(t *testing.T) {
	_, err := NewTcellWindow(tcell.NewSimulationScreen("UTF-8"), VideoMode{Width: 0, Height: 10, BitsPerPixel: 32}, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating window")
}

func TestTcellWindow_PollEventEmpty(t *testing.T) {
	w, _ := newSimWindow(t)

	for {
		ev, ok := w.PollEvent()
		if !ok {
			break
		}
		assert.NotEqual(t, EventKeyPressed, ev.Kind)
	}
	assert.True(t, w.IsOpen())
}

func TestTcellWindow_Keys(t *testing.T) {
	tests := map[string]struct {
		key  tcell.Key
		ch   rune
		want Event
	}{
		"lower case rune": {key: tcell.KeyRune, ch: 'k', want: Event{Kind: EventKeyPressed, Code: KeyK}},
		"upper case rune": {key: tcell.KeyRune, ch: 'J', want: Event{Kind: EventKeyPressed, Code: KeyJ}},
		"escape":          {key: tcell.KeyEscape, want: Event{Kind: EventKeyPressed, Code: KeyEscape}},
		"arrow up":        {key: tcell.KeyUp, want: Event{Kind: EventKeyPressed, Code: KeyUp}},
		"arrow down":      {key: tcell.KeyDown, want: Event{Kind: EventKeyPressed, Code: KeyDown}},
		"ctrl c":          {key: tcell.KeyCtrlC, want: Event{Kind: EventClosed}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, screen := newSimWindow(t)

			screen.InjectKey(tt.key, tt.ch, tcell.ModNone)

			assert.Equal(t, tt.want, waitKey(t, w))
		})
	}
}

func TestTcellWindow_DrawAndDisplay(t *testing.T) {
	w, screen := newSimWindow(t)

	w.Clear(White)
	require.Equal(t, Projection{World: Vector{X: 100, Y: 100}, Cols: 10, Rows: 10}, w.Projection())

	w.Draw(CircleShape{Radius: 1, FillColor: Red, Position: Vector{X: 60, Y: 70}})
	w.Display()

	cells, width, _ := screen.GetContents()
	drawn := cells[7*width+6]
	require.NotEmpty(t, drawn.Runes)
	assert.Equal(t, block, drawn.Runes[0])

	blank := cells[0]
	require.NotEmpty(t, blank.Runes)
	assert.Equal(t, ' ', blank.Runes[0])
}

func TestTcellWindow_Close(t *testing.T) {
	w, _ := newSimWindow(t)

	w.Close()
	w.Close()

	assert.False(t, w.IsOpen())
	require.Eventually(t, func() bool {
		_, ok := <-w.events
		return !ok
	}, time.Second, time.Millisecond)
	_, ok := w.PollEvent()
	assert.False(t, ok)

	// Drawing on a closed window is a no-op.
	w.Clear(White)
	w.Draw(CircleShape{Radius: 1, FillColor: Red})
	w.Display()
}

func TestKeyFromRune(t *testing.T) {
	assert.Equal(t, KeyK, KeyFromRune('k'))
	assert.Equal(t, KeyK, KeyFromRune('K'))
	assert.Equal(t, KeyQ, KeyFromRune('q'))
	assert.Equal(t, KeyEscape, KeyFromRune(27))
	assert.Equal(t, KeyUnknown, KeyFromRune('\r'))
	assert.Equal(t, Key('1'), KeyFromRune('1'))
}

func TestVideoMode_Validate(t *testing.T) {
	assert.NoError(t, VideoMode{Width: 1024, Height: 768, BitsPerPixel: 32}.Validate())
	assert.Error(t, VideoMode{Width: 1024, Height: -1, BitsPerPixel: 32}.Validate())
	assert.Error(t, VideoMode{Width: 1024, Height: 768}.Validate())
	assert.True(t, VideoMode{BitsPerPixel: 24}.TrueColor())
	assert.False(t, VideoMode{BitsPerPixel: 8}.TrueColor())
}
