package pong

import (
	"log/slog"

	"termpong/internal/renderer"
)

type Closer interface {
	Close()
}

type EventSource interface {
	Closer
	PollEvent() (renderer.Event, bool)
}

// CollectInput drains every event currently queued on w. Close requests are
// passed to the window straight away, key presses are buffered in the
// returned snapshot and everything else is dropped.
func CollectInput(w EventSource, s GameState) GameState {
	var keys []renderer.Key
	for {
		ev, ok := w.PollEvent()
		if !ok {
			break
		}
		switch ev.Kind {
		case renderer.EventClosed:
			w.Close()
		case renderer.EventKeyPressed:
			keys = append(keys, ev.Code)
		}
	}

	if len(keys) == 0 {
		return s
	}
	slog.Debug("collected input", slog.Any("keys", keys))
	return s.WithKeys(keys...)
}
