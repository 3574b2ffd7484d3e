package main

import (
	"fmt"
	"image"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"seggif/pkg/overlay"
	"seggif/pkg/sequence"
	"seggif/pkg/source"
)

var images = flag.String("images", "sample_data/images", "image directory")
var masks = flag.String("masks", "sample_data/masks", "mask directory")
var output = flag.String("output", "segmentation.gif", "output gif path")
var colors = flag.String("colors", "255=#0000ff,126=#ff0000,127=#ff0000", "class colors as label=hex list")
var alpha = flag.Float64("alpha", 0.4, "overlay opacity")
var imageDur = flag.Duration("image-duration", 400*time.Millisecond, "plain frame duration")
var maskDur = flag.Duration("mask-duration", 1200*time.Millisecond, "overlay frame duration")
var resize = flag.String("resize", "", "resize frames to WxH")
var loop = flag.Int("loop", 0, "loop count (0 = infinite)")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			newLogger,
			newBuilder,
			func(logger *zap.Logger) (afero.Fs, *source.Loader) {
				fs := afero.NewOsFs()
				return fs, source.NewLoader(fs, logger)
			},
		),
		fx.Invoke(run),
	).Run()
}

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newBuilder(logger *zap.Logger) (*sequence.Builder, error) {
	table, err := overlay.ParseTable(*colors)
	if err != nil {
		return nil, fmt.Errorf("parse colors failed: %w", err)
	}

	opts := []sequence.Option{
		sequence.WithAlpha(*alpha),
		sequence.WithDurations(*imageDur, *maskDur),
		sequence.WithLoop(*loop),
		sequence.WithProgress(true),
		sequence.WithLogger(logger),
	}

	if *resize != "" {
		var w, h int
		if _, err := fmt.Sscanf(*resize, "%dx%d", &w, &h); err != nil {
			return nil, fmt.Errorf("bad resize %q: %w", *resize, err)
		}
		opts = append(opts, sequence.WithResize(w, h))
	}

	return sequence.NewBuilder(table, opts...)
}

func run(fs afero.Fs, loader *source.Loader, builder *sequence.Builder, logger *zap.Logger, shutdowner fx.Shutdowner) error {
	defer func() {
		_ = shutdowner.Shutdown()
	}()

	if err := build(fs, loader, builder, logger); err != nil {
		logger.With(zap.Error(err)).Error("build failed")
		return err
	}

	return nil
}

func build(fs afero.Fs, loader *source.Loader, builder *sequence.Builder, logger *zap.Logger) error {
	pairs, err := source.MatchPairs(fs, *images, *masks, logger)
	if err != nil {
		return fmt.Errorf("match pairs failed: %w", err)
	}
	if len(pairs) == 0 {
		return errors.New("no matching image-mask pairs found")
	}

	logger.With(zap.Int("pairs", len(pairs))).Info("matched inputs")

	imgs := make([]image.Image, 0, len(pairs))
	msks := make([]*image.Gray, 0, len(pairs))

	for _, p := range pairs {
		img, err := loader.Image(p.Image)
		if err != nil {
			return err
		}
		mask, err := loader.Mask(p.Mask)
		if err != nil {
			return err
		}
		imgs = append(imgs, img)
		msks = append(msks, mask)
	}

	seq, err := builder.Build(imgs, msks)
	if err != nil {
		return fmt.Errorf("build sequence failed: %w", err)
	}

	if err := seq.WriteFile(fs, *output); err != nil {
		return fmt.Errorf("write gif failed: %w", err)
	}

	fi, err := fs.Stat(*output)
	if err != nil {
		return err
	}

	logger.With(
		zap.String("path", *output),
		zap.Int("frames", len(seq.Frames)),
		zap.Duration("total", seq.TotalDuration()),
		zap.String("size", bytesize.New(float64(fi.Size())).String()),
	).Info("gif written")

	return nil
}
