package main

import (
	"image"
	"image/color"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"seggif/pkg/overlay"
	"seggif/pkg/sequence"
	"seggif/pkg/source"
)

// Quick driver with the axon/myelin defaults: white labels blue, gray
// labels red, background transparent. Use cmd/seggif for the full CLI.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	fs := afero.NewOsFs()

	pairs, err := source.MatchPairs(fs, "sample_data/images", "sample_data/masks", logger)
	if err != nil {
		panic(err)
	}

	loader := source.NewLoader(fs, logger)

	var imgs []image.Image
	var msks []*image.Gray
	for _, p := range pairs {
		img, err := loader.Image(p.Image)
		if err != nil {
			panic(err)
		}
		mask, err := loader.Mask(p.Mask)
		if err != nil {
			panic(err)
		}
		imgs = append(imgs, img)
		msks = append(msks, mask)
	}

	builder, err := sequence.NewBuilder(overlay.Table{
		255: color.NRGBA{B: 255, A: 255},
		126: color.NRGBA{R: 255, A: 255},
		127: color.NRGBA{R: 255, A: 255},
	}, sequence.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	seq, err := builder.Build(imgs, msks)
	if err != nil {
		panic(err)
	}

	if err := seq.WriteFile(fs, "axon_myelin_segmentation.gif"); err != nil {
		panic(err)
	}
}
