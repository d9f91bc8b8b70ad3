package ansii

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	black       ANSI = "\033[30m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	purple      ANSI = "\033[35m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	blackBg     ANSI = "\033[40m"
	redBg       ANSI = "\033[41m"
	greenBg     ANSI = "\033[42m"
	yellowBg    ANSI = "\033[43m"
	blueBg      ANSI = "\033[44m"
	purpleBg    ANSI = "\033[45m"
	cyanBg      ANSI = "\033[46m"
	whiteBg     ANSI = "\033[47m"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

type style struct {
	Reset ANSI
}

type color struct {
	Black  ANSI
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block string
}

var (
	Styles   = style{Reset: reset}
	Colors   = color{Black: black, Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	BgColors = color{Black: blackBg, Red: redBg, Green: greenBg, Yellow: yellowBg, Blue: blueBg, Purple: purpleBg, Cyan: cyanBg, White: whiteBg}
	Screen   = screen{ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks   = ascii{Block: "█"}
)

// PlaceCursor moves the cursor to the 1 based column X and row Y.
func (s screen) PlaceCursor(X, Y int) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", Y, X))
}

func (s screen) Title(title string) ANSI {
	return ANSI(fmt.Sprintf("\033]0;%s\007", title))
}

func TrueColor(r, g, b uint8) ANSI {
	return ANSI(fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b))
}

func TrueColorBg(r, g, b uint8) ANSI {
	return ANSI(fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b))
}

func GetTermSize() (width int, height int, err error) {
	var fd int = int(os.Stdout.Fd())
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return width, height, nil
}

func MakeTermRaw() (*term.State, error) {
	var fd int = int(os.Stdin.Fd())
	return term.MakeRaw(fd)
}

func RestoreTerm(prev *term.State) error {
	var fd int = int(os.Stdin.Fd())
	return term.Restore(fd, prev)
}
