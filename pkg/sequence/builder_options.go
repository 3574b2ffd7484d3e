package sequence

import (
	"image"
	"time"

	"go.uber.org/zap"
)

type Option func(b *Builder)

func WithAlpha(alpha float64) Option {
	return func(b *Builder) {
		b.alpha = alpha
	}
}

func WithDurations(image, mask time.Duration) Option {
	return func(b *Builder) {
		b.imageDur = image
		b.maskDur = mask
	}
}

func WithResize(w, h int) Option {
	return func(b *Builder) {
		b.resize = &image.Point{X: w, Y: h}
	}
}

func WithLoop(count int) Option {
	return func(b *Builder) {
		b.loop = count
	}
}

func WithProgress(show bool) Option {
	return func(b *Builder) {
		b.progress = show
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}
