package renderer

import "image/color"

type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var (
	Black   = Color{R: 0, G: 0, B: 0, A: 255}
	White   = Color{R: 255, G: 255, B: 255, A: 255}
	Red     = Color{R: 255, G: 0, B: 0, A: 255}
	Magenta = Color{R: 255, G: 0, B: 255, A: 255}
)

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorOf converts any image color into a non-premultiplied Color.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
