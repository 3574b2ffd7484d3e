package sequence

import (
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"seggif/pkg/overlay"
)

var ErrLengthMismatch = errors.New("images and masks counts differ")
var ErrInvalidConfig = errors.New("invalid sequence configuration")

func NewBuilder(table overlay.Table, opts ...Option) (*Builder, error) {
	b := &Builder{
		table:    table,
		alpha:    0.4,
		imageDur: 400 * time.Millisecond,
		maskDur:  1200 * time.Millisecond,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.alpha < 0 || b.alpha > 1 {
		return nil, fmt.Errorf("%w: alpha %v outside [0, 1]", ErrInvalidConfig, b.alpha)
	}
	if b.imageDur <= 0 || b.maskDur <= 0 {
		return nil, fmt.Errorf("%w: durations must be positive", ErrInvalidConfig)
	}
	if b.loop < 0 {
		return nil, fmt.Errorf("%w: loop count must be >= 0", ErrInvalidConfig)
	}
	if b.resize != nil && (b.resize.X <= 0 || b.resize.Y <= 0) {
		return nil, fmt.Errorf("%w: resize %dx%d", ErrInvalidConfig, b.resize.X, b.resize.Y)
	}

	return b, nil
}

type Builder struct {
	table    overlay.Table
	alpha    float64
	imageDur time.Duration
	maskDur  time.Duration
	loop     int
	resize   *image.Point
	progress bool
	logger   *zap.Logger
}

// Build assembles the alternating plain/overlay frame list for the given
// pre-paired inputs. Pairing by filename is the caller's job; positions
// must correspond. Any pair failure aborts the whole build.
func (b *Builder) Build(images []image.Image, masks []*image.Gray) (*FrameSequence, error) {
	if len(images) != len(masks) {
		return nil, fmt.Errorf("%w: %d images, %d masks", ErrLengthMismatch, len(images), len(masks))
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: at least one image-mask pair required", ErrInvalidConfig)
	}

	seq := &FrameSequence{LoopCount: b.loop}

	var bar *progressbar.ProgressBar
	if b.progress {
		bar = progressbar.Default(int64(len(images)), "compositing")
	}

	for i := range images {
		img, mask := images[i], masks[i]

		if b.resize != nil {
			img = imaging.Resize(img, b.resize.X, b.resize.Y, imaging.Lanczos)
			// nearest keeps label values intact
			mask = overlay.ToGray(imaging.Resize(mask, b.resize.X, b.resize.Y, imaging.NearestNeighbor))
		}

		plain := imaging.Clone(img)

		overlaid, err := overlay.Composite(img, mask, b.table, b.alpha)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}

		seq.Frames = append(seq.Frames, plain, overlaid)
		seq.Durations = append(seq.Durations, b.imageDur, b.maskDur)

		b.logger.With(zap.Int("pair", i)).Debug("composited")
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return seq, nil
}
