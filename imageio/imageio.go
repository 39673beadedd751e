// Package imageio reads and writes sprites as PNG files. Sprites cross
// this boundary as generic RGBA rasters; nothing here touches compositing.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/sangyeon-bagelcode/pixeldot"
)

// Decode reads a PNG stream into a sprite.
func Decode(r io.Reader) (*pixeldot.Sprite, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode png: %w", err)
	}
	return pixeldot.FromImage(img), nil
}

// Encode writes a sprite to a PNG stream.
func Encode(w io.Writer, s *pixeldot.Sprite) error {
	if err := png.Encode(w, s.ToNRGBA()); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// Load reads a PNG file into a sprite.
func Load(path string) (*pixeldot.Sprite, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Save writes a sprite to a PNG file, creating parent directories as
// needed.
func Save(s *pixeldot.Sprite, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("imageio: create directory: %w", err)
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Encode(f, s); err != nil {
		return err
	}
	pixeldot.Logger().Debug("saved sprite",
		slog.String("path", path),
		slog.Int("width", s.Width()),
		slog.Int("height", s.Height()))
	return nil
}

// SavePreview writes an upscaled preview PNG. The sprite is scaled by the
// integer factor with nearest-neighbor sampling so pixel edges stay crisp.
func SavePreview(s *pixeldot.Sprite, path string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("imageio: scale factor must be >= 1, got %d", scale)
	}
	src := s.ToNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, s.Width()*scale, s.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("imageio: create directory: %w", err)
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}
