package sequence

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/pkg/errors"
)

// gif delays are counted in hundredths of a second
const delayUnit = 10 * time.Millisecond

// EncodeGIF writes the sequence as an animated GIF. All frames share a
// single global palette quantized from the last (overlay) frame, so plain
// and tinted frames map onto one color table.
func (s *FrameSequence) EncodeGIF(w io.Writer) error {
	if len(s.Frames) == 0 {
		return errors.New("empty frame sequence")
	}
	if len(s.Frames) != len(s.Durations) {
		return errors.Errorf("%d frames but %d durations", len(s.Frames), len(s.Durations))
	}

	pal := quantize(s.Frames[len(s.Frames)-1])

	out := &gif.GIF{LoopCount: s.LoopCount}
	for i, frame := range s.Frames {
		p := image.NewPaletted(frame.Bounds(), pal)
		draw.Draw(p, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, int(s.Durations[i]/delayUnit))
	}

	return gif.EncodeAll(w, out)
}

func quantize(ref *image.NRGBA) color.Palette {
	p := image.NewPaletted(ref.Bounds(), palette.Plan9)
	draw.Draw(p, ref.Bounds(), ref, ref.Bounds().Min, draw.Over)
	return p.Palette
}
