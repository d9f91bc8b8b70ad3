package assets

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"

	"termpong/internal/pong"
	"termpong/internal/renderer"
)

// PaddleRect is the source rectangle every paddle texture is cut from.
var PaddleRect = image.Rect(0, 0, pong.PaddleWidth, pong.PaddleHeight)

var textureFiles = map[pong.PlayerId]string{
	pong.BluePaddle:  "blue-paddle.png",
	pong.GreenPaddle: "green-paddle.png",
}

// LoadTexture decodes the image at path and crops it to rect. A rect that
// reaches past the image is clipped to the image bounds.
func LoadTexture(path string, rect image.Rectangle) (*renderer.Texture, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not load asset %q: %w", path, err)
	}

	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("could not load asset %q: source rect outside image bounds %v", path, img.Bounds())
	}

	return renderer.NewTexture(path, imaging.Crop(img, rect)), nil
}

// Store owns the textures of a session. Sprites only reference them, so the
// store must stay reachable for as long as anything can be drawn.
type Store struct {
	dir      string
	textures map[pong.PlayerId]*renderer.Texture
}

// Load reads the texture of every player from dir.
func Load(dir string) (*Store, error) {
	s := &Store{
		dir:      dir,
		textures: make(map[pong.PlayerId]*renderer.Texture, len(pong.Players)),
	}

	for _, id := range pong.Players {
		file, ok := textureFiles[id]
		if !ok {
			return nil, fmt.Errorf("no texture registered for player %v", id)
		}

		t, err := LoadTexture(filepath.Join(dir, file), PaddleRect)
		if err != nil {
			return nil, err
		}
		s.textures[id] = t
		slog.Debug("loaded texture", slog.String("player", id.String()), slog.String("path", t.Path()))
	}

	return s, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Texture(id pong.PlayerId) (*renderer.Texture, bool) {
	t, ok := s.textures[id]
	return t, ok
}

// Textures returns the loaded textures keyed by player.
func (s *Store) Textures() map[pong.PlayerId]*renderer.Texture {
	textures := make(map[pong.PlayerId]*renderer.Texture, len(s.textures))
	for id, t := range s.textures {
		textures[id] = t
	}
	return textures
}
