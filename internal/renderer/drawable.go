package renderer

import (
	"errors"
	"image"
	"math"
)

type Vector struct {
	X float32
	Y float32
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(f float32) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Drawable is anything a Window can draw. Raster returns the terminal cells
// covered by the drawable under the given projection, clipped to the grid.
type Drawable interface {
	Raster(p Projection) []Cell
}

// Texture is an immutable image cropped to its source rectangle.
type Texture struct {
	path  string
	image *image.NRGBA
}

// NewTexture wraps an already cropped image. The image bounds must start at
// the origin.
func NewTexture(path string, img *image.NRGBA) *Texture {
	return &Texture{path: path, image: img}
}

func (t *Texture) Path() string {
	return t.path
}

func (t *Texture) Size() Vector {
	b := t.image.Bounds()
	return Vector{X: float32(b.Dx()), Y: float32(b.Dy())}
}

// At returns the texel at x, y clamped to the texture bounds.
func (t *Texture) At(x, y int) Color {
	b := t.image.Bounds()
	x = min(max(x, b.Min.X), b.Max.X-1)
	y = min(max(y, b.Min.Y), b.Max.Y-1)
	return ColorOf(t.image.NRGBAAt(x, y))
}

var ErrNoTexture = errors.New("sprite requires a texture")

// Sprite draws a texture at a position. Sprites are values; Move returns a
// moved copy. The texture is not owned by the sprite.
type Sprite struct {
	texture  *Texture
	Position Vector
}

func NewSprite(t *Texture) (Sprite, error) {
	if t == nil || t.image == nil {
		return Sprite{}, ErrNoTexture
	}
	return Sprite{texture: t}, nil
}

func (s Sprite) Texture() *Texture {
	return s.texture
}

func (s Sprite) Move(offset Vector) Sprite {
	s.Position = s.Position.Add(offset)
	return s
}

func (s Sprite) Raster(p Projection) []Cell {
	size := s.texture.Size()
	return p.fill(s.Position, s.Position.Add(size), func(at Vector) (Color, bool) {
		local := Vector{X: at.X - s.Position.X, Y: at.Y - s.Position.Y}
		if local.X < 0 || local.Y < 0 || local.X >= size.X || local.Y >= size.Y {
			return Color{}, false
		}
		c := s.texture.At(int(local.X), int(local.Y))
		return c, c.A != 0
	})
}

// CircleShape is a filled circle with an outline drawn outside the radius.
// Position is the top left corner of the circle's bounding box.
type CircleShape struct {
	Radius           float32
	OutlineThickness float32
	FillColor        Color
	OutlineColor     Color
	Position         Vector
}

func (c CircleShape) Center() Vector {
	return c.Position.Add(Vector{X: c.Radius, Y: c.Radius})
}

func (c CircleShape) Move(offset Vector) CircleShape {
	c.Position = c.Position.Add(offset)
	return c
}

func (c CircleShape) Raster(p Projection) []Cell {
	center := c.Center()
	outer := c.Radius + c.OutlineThickness
	reach := Vector{X: outer, Y: outer}
	return p.fill(center.Add(reach.Scale(-1)), center.Add(reach), func(at Vector) (Color, bool) {
		d := float32(math.Hypot(float64(at.X-center.X), float64(at.Y-center.Y)))
		switch {
		case d <= c.Radius:
			return c.FillColor, true
		case d <= outer:
			return c.OutlineColor, true
		}
		return Color{}, false
	})
}
