package source

import (
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func writePNG(t *testing.T, fs afero.Fs, path string, img image.Image) {
	t.Helper()

	f, err := fs.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestMatchPairs(t *testing.T) {
	fs := afero.NewMemMapFs()
	blank := image.NewGray(image.Rect(0, 0, 2, 2))

	for _, name := range []string{"c.png", "a.png", "b.png"} {
		writePNG(t, fs, "images/"+name, blank)
	}
	for _, name := range []string{"a.png", "c.png"} {
		writePNG(t, fs, "masks/"+name, blank)
	}

	pairs, err := MatchPairs(fs, "images", "masks", zap.NewNop())
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("pair count: %d", len(pairs))
	}
	if pairs[0].Image != "images/a.png" || pairs[0].Mask != "masks/a.png" {
		t.Fatalf("first pair: %+v", pairs[0])
	}
	if pairs[1].Image != "images/c.png" || pairs[1].Mask != "masks/c.png" {
		t.Fatalf("second pair: %+v", pairs[1])
	}
}

func TestMatchPairsMissingDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := MatchPairs(fs, "nope", "masks", zap.NewNop()); !errors.Is(err, ErrUnreadableInput) {
		t.Fatalf("expected ErrUnreadableInput, got %v", err)
	}
}

func TestLoaderImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})
	writePNG(t, fs, "in/pic.png", img)

	loaded, err := NewLoader(fs, zap.NewNop()).Image("in/pic.png")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if loaded.Bounds().Dx() != 3 || loaded.Bounds().Dy() != 2 {
		t.Fatalf("bounds: %v", loaded.Bounds())
	}
}

func TestLoaderMask(t *testing.T) {
	fs := afero.NewMemMapFs()
	mask := image.NewGray(image.Rect(0, 0, 2, 2))
	mask.SetGray(0, 1, color.Gray{Y: 255})
	mask.SetGray(1, 1, color.Gray{Y: 126})
	writePNG(t, fs, "mask.png", mask)

	loaded, err := NewLoader(fs, zap.NewNop()).Mask("mask.png")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if got := loaded.GrayAt(0, 1).Y; got != 255 {
		t.Fatalf("label (0,1): %d", got)
	}
	if got := loaded.GrayAt(1, 1).Y; got != 126 {
		t.Fatalf("label (1,1): %d", got)
	}
	if got := loaded.GrayAt(0, 0).Y; got != 0 {
		t.Fatalf("label (0,0): %d", got)
	}
}

func TestLoaderUnreadable(t *testing.T) {
	fs := afero.NewMemMapFs()
	loader := NewLoader(fs, zap.NewNop())

	if _, err := loader.Image("missing.png"); !errors.Is(err, ErrUnreadableInput) {
		t.Fatalf("missing file: expected ErrUnreadableInput, got %v", err)
	}

	if err := afero.WriteFile(fs, "garbage.png", []byte("not a png"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loader.Image("garbage.png"); !errors.Is(err, ErrUnreadableInput) {
		t.Fatalf("garbage file: expected ErrUnreadableInput, got %v", err)
	}
}
