package renderer

// Key is a normalised key code. Letters are stored as their upper case rune,
// arrows as their unicode arrow rune.
type Key rune

const (
	KeyUnknown Key = iota
	KeyEscape  Key = 27
	KeyJ       Key = 74 // 'J'
	KeyK       Key = 75 // 'K'
	KeyQ       Key = 81 // 'Q'
	KeyLeft    Key = 8592
	KeyUp      Key = 8593
	KeyRight   Key = 8594
	KeyDown    Key = 8595
)

// KeyFromRune converts a typed rune into a Key.
func KeyFromRune(r rune) Key {
	// Convert to UpperCase
	if r >= 'a' && r <= 'z' {
		r = r - 32
	}
	if r < ' ' && r != rune(KeyEscape) {
		return KeyUnknown
	}
	return Key(r)
}

func (k Key) String() string {
	switch k {
	case KeyUnknown:
		return "unknown"
	case KeyEscape:
		return "escape"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	}
	return string(rune(k))
}
