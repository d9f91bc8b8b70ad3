package renderer

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

const (
	eventBuffer = 64
	block       = '█'
)

// TcellWindow is a Window backed by a tcell screen. The logical video mode is
// projected onto whatever cell grid the terminal currently has.
type TcellWindow struct {
	screen     tcell.Screen
	mode       VideoMode
	events     chan Event
	open       bool
	resized    bool
	projection Projection
	background tcell.Style
}

// NewTcellWindow initializes screen and starts reading its events.
func NewTcellWindow(screen tcell.Screen, mode VideoMode, title string) (*TcellWindow, error) {
	if err := mode.Validate(); err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("creating window: initializing terminal screen: %w", err)
	}
	screen.SetTitle(title)
	screen.HideCursor()

	w := &TcellWindow{
		screen:     screen,
		mode:       mode,
		events:     make(chan Event, eventBuffer),
		open:       true,
		background: tcell.StyleDefault,
	}
	w.updateProjection()

	go w.readEvents()

	slog.Debug("window created", slog.String("title", title), slog.Any("projection", w.projection))
	return w, nil
}

// readEvents forwards screen events until the screen is finalized.
func (w *TcellWindow) readEvents() {
	defer close(w.events)
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		w.events <- translateEvent(ev)
	}
}

func translateEvent(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return Event{Kind: EventClosed}
		case tcell.KeyEscape:
			return Event{Kind: EventKeyPressed, Code: KeyEscape}
		case tcell.KeyUp:
			return Event{Kind: EventKeyPressed, Code: KeyUp}
		case tcell.KeyDown:
			return Event{Kind: EventKeyPressed, Code: KeyDown}
		case tcell.KeyLeft:
			return Event{Kind: EventKeyPressed, Code: KeyLeft}
		case tcell.KeyRight:
			return Event{Kind: EventKeyPressed, Code: KeyRight}
		case tcell.KeyRune:
			return Event{Kind: EventKeyPressed, Code: KeyFromRune(ev.Rune())}
		}
		return Event{Kind: EventKeyPressed, Code: KeyUnknown}
	case *tcell.EventResize:
		return Event{Kind: EventResized}
	}
	return Event{Kind: EventOther}
}

func (w *TcellWindow) PollEvent() (Event, bool) {
	select {
	case ev, ok := <-w.events:
		if !ok {
			return Event{}, false
		}
		if ev.Kind == EventResized {
			w.resized = true
		}
		return ev, true
	default:
		return Event{}, false
	}
}

func (w *TcellWindow) IsOpen() bool {
	return w.open
}

// Close finalizes the screen and restores the terminal.
func (w *TcellWindow) Close() {
	if !w.open {
		return
	}
	w.open = false
	w.screen.Fini()
}

func (w *TcellWindow) Clear(c Color) {
	if !w.open {
		return
	}
	w.updateProjection()
	w.background = tcell.StyleDefault.Background(tcellColor(c))
	w.screen.Fill(' ', w.background)
}

func (w *TcellWindow) Draw(d Drawable) {
	if !w.open {
		return
	}
	for _, cell := range d.Raster(w.projection) {
		w.screen.SetContent(cell.X, cell.Y, block, nil, w.background.Foreground(tcellColor(cell.Color)))
	}
}

func (w *TcellWindow) Display() {
	if !w.open {
		return
	}
	if w.resized {
		w.resized = false
		w.screen.Sync()
		return
	}
	w.screen.Show()
}

// Projection returns the projection used by the last cleared frame.
func (w *TcellWindow) Projection() Projection {
	return w.projection
}

func (w *TcellWindow) updateProjection() {
	cols, rows := w.screen.Size()
	w.projection = Projection{World: w.mode.World(), Cols: cols, Rows: rows}
}

func tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
