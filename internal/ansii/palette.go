package ansii

import "termpong/internal/renderer"

type paletteEntry struct {
	rgb  renderer.Color
	pick func(color) ANSI
}

// The eight basic terminal colors, used when the video mode is below 24 bits.
var palette = []paletteEntry{
	{renderer.RGB(0, 0, 0), func(c color) ANSI { return c.Black }},
	{renderer.RGB(255, 0, 0), func(c color) ANSI { return c.Red }},
	{renderer.RGB(0, 255, 0), func(c color) ANSI { return c.Green }},
	{renderer.RGB(255, 255, 0), func(c color) ANSI { return c.Yellow }},
	{renderer.RGB(0, 0, 255), func(c color) ANSI { return c.Blue }},
	{renderer.RGB(255, 0, 255), func(c color) ANSI { return c.Purple }},
	{renderer.RGB(0, 255, 255), func(c color) ANSI { return c.Cyan }},
	{renderer.RGB(255, 255, 255), func(c color) ANSI { return c.White }},
}

// nearest returns the palette escape closest to c.
func (p color) nearest(c renderer.Color) ANSI {
	best := palette[0]
	bestDist := -1
	for _, e := range palette {
		dr := int(e.rgb.R) - int(c.R)
		dg := int(e.rgb.G) - int(c.G)
		db := int(e.rgb.B) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best.pick(p)
}
