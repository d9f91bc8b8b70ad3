package ansii

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"termpong/internal/renderer"
)

const (
	eventBuffer        = 64
	defaultEscapeDelay = 25 * time.Millisecond
)

// Window is a renderer.Window that writes plain ANSI escape sequences. Each
// frame is built in memory and written out in one go on Display.
type Window struct {
	out         io.Writer
	size        func() (int, int, error)
	mode        renderer.VideoMode
	events      chan renderer.Event
	escapeDelay time.Duration
	open        bool
	frame       strings.Builder
	projection  renderer.Projection
}

type Option func(*Window)

// WithSize replaces the terminal size lookup.
func WithSize(size func() (int, int, error)) Option {
	return func(w *Window) {
		w.size = size
	}
}

// WithEscapeDelay sets how long a lone ESC waits for the rest of an escape
// sequence before it is reported as the escape key.
func WithEscapeDelay(d time.Duration) Option {
	return func(w *Window) {
		w.escapeDelay = d
	}
}

// NewWindow creates a window drawing to out and reading keys from in. The
// terminal is expected to already be in raw mode.
func NewWindow(out io.Writer, in io.Reader, mode renderer.VideoMode, title string, opts ...Option) (*Window, error) {
	if err := mode.Validate(); err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w := &Window{
		out:         out,
		size:        GetTermSize,
		mode:        mode,
		events:      make(chan renderer.Event, eventBuffer),
		escapeDelay: defaultEscapeDelay,
		open:        true,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.updateProjection(); err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	_, err := io.WriteString(out, string(Screen.Title(title)+Screen.HideCursor))
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	go w.readInput(in)

	return w, nil
}

// readInput forwards key presses until in is exhausted. An escape prefix left
// dangling at the end of a read is held back for escapeDelay so the rest of
// the sequence can arrive in the next read.
func (w *Window) readInput(in io.Reader) {
	defer close(w.events)

	chunks := make(chan []byte)
	go func() {
		defer close(chunks)
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				chunks <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				if err != io.EOF {
					slog.Debug("error reading terminal input", slog.Any("error", err))
				}
				return
			}
		}
	}()

	var p inputParser
	for {
		var timeout <-chan time.Time
		if p.pending() {
			timeout = time.After(w.escapeDelay)
		}

		select {
		case chunk, ok := <-chunks:
			if !ok {
				w.send(p.flush())
				return
			}
			w.send(p.parse(chunk))
		case <-timeout:
			w.send(p.flush())
		}
	}
}

func (w *Window) send(events []renderer.Event) {
	for _, ev := range events {
		w.events <- ev
	}
}

const (
	parseGround = iota
	parseEscape
	parseSequence
)

// inputParser turns raw terminal bytes into events. Arrow keys arrive as
// ESC [ A..D or ESC O A..D, a lone ESC is the escape key and Ctrl-C requests
// a close. Its state survives between reads.
type inputParser struct {
	state int
}

func (p *inputParser) pending() bool {
	return p.state != parseGround
}

func (p *inputParser) parse(bytes []byte) []renderer.Event {
	var events []renderer.Event
	for i := 0; i < len(bytes); i++ {
		b := bytes[i]
		switch p.state {
		case parseEscape:
			if b == '[' || b == 'O' {
				p.state = parseSequence
				continue
			}
			// ESC followed by anything else was a lone escape press.
			p.state = parseGround
			events = append(events, keyPressed(renderer.KeyEscape))
			i--
		case parseSequence:
			// parameters such as the "1;5" of a modified arrow
			if b >= 0x30 && b <= 0x3f {
				continue
			}
			p.state = parseGround
			events = append(events, keyPressed(arrowKey(b)))
		default:
			switch b {
			// Ctrl-C
			case 3:
				events = append(events, renderer.Event{Kind: renderer.EventClosed})
			// Esc char
			case 27:
				p.state = parseEscape
			default:
				events = append(events, keyPressed(renderer.KeyFromRune(rune(b))))
			}
		}
	}
	return events
}

// flush resolves an unfinished prefix once no more bytes are coming.
func (p *inputParser) flush() []renderer.Event {
	state := p.state
	p.state = parseGround
	switch state {
	case parseEscape:
		return []renderer.Event{keyPressed(renderer.KeyEscape)}
	case parseSequence:
		return []renderer.Event{keyPressed(renderer.KeyUnknown)}
	}
	return nil
}

func keyPressed(k renderer.Key) renderer.Event {
	return renderer.Event{Kind: renderer.EventKeyPressed, Code: k}
}

func arrowKey(b byte) renderer.Key {
	switch b {
	case 'A':
		return renderer.KeyUp
	case 'B':
		return renderer.KeyDown
	case 'C':
		return renderer.KeyRight
	case 'D':
		return renderer.KeyLeft
	}
	return renderer.KeyUnknown
}

func (w *Window) PollEvent() (renderer.Event, bool) {
	select {
	case ev, ok := <-w.events:
		if !ok {
			return renderer.Event{}, false
		}
		return ev, true
	default:
		return renderer.Event{}, false
	}
}

func (w *Window) IsOpen() bool {
	return w.open
}

// Close restores the cursor and clears the screen.
func (w *Window) Close() {
	if !w.open {
		return
	}
	w.open = false
	io.WriteString(w.out, string(Styles.Reset+Screen.ClearScreen+Screen.PlaceCursor(1, 1)+Screen.ShowCursor))
}

func (w *Window) Clear(c renderer.Color) {
	if !w.open {
		return
	}
	if err := w.updateProjection(); err != nil {
		slog.Debug("keeping previous terminal size", slog.Any("error", err))
	}
	w.frame.Reset()
	w.frame.WriteString(string(w.bg(c) + Screen.ClearScreen))
}

// Draws every cell of d as a colored block.
func (w *Window) Draw(d renderer.Drawable) {
	if !w.open {
		return
	}
	for _, cell := range d.Raster(w.projection) {
		w.frame.WriteString(string(Screen.PlaceCursor(cell.X+1, cell.Y+1) + w.fg(cell.Color)))
		w.frame.WriteString(Blocks.Block)
	}
}

func (w *Window) Display() {
	if !w.open {
		return
	}
	w.frame.WriteString(string(Styles.Reset))
	if _, err := io.WriteString(w.out, w.frame.String()); err != nil {
		slog.Debug("failed to write frame", slog.Any("error", err))
	}
	w.frame.Reset()
}

func (w *Window) Projection() renderer.Projection {
	return w.projection
}

func (w *Window) updateProjection() error {
	cols, rows, err := w.size()
	if err != nil {
		return err
	}
	w.projection = renderer.Projection{World: w.mode.World(), Cols: cols, Rows: rows}
	return nil
}

func (w *Window) fg(c renderer.Color) ANSI {
	if w.mode.TrueColor() {
		return TrueColor(c.R, c.G, c.B)
	}
	return Colors.nearest(c)
}

func (w *Window) bg(c renderer.Color) ANSI {
	if w.mode.TrueColor() {
		return TrueColorBg(c.R, c.G, c.B)
	}
	return BgColors.nearest(c)
}
