package source

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"seggif/pkg/overlay"
)

var ErrUnreadableInput = errors.New("unreadable input")

func NewLoader(fs afero.Fs, logger *zap.Logger) *Loader {
	return &Loader{
		fs:  fs,
		dl:  newDownloader(logger),
		log: logger,
	}
}

type Loader struct {
	fs  afero.Fs
	dl  *downloader
	log *zap.Logger
}

// Image decodes the raster at path, which may also be an http(s) URL.
func (l *Loader) Image(path string) (image.Image, error) {
	bs, err := l.read(path)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableInput, path, err)
	}

	l.log.With(zap.String("path", path), zap.String("format", format)).Debug("decoded")
	return img, nil
}

// Mask decodes like Image and reduces the result to its 8-bit label plane.
func (l *Loader) Mask(path string) (*image.Gray, error) {
	img, err := l.Image(path)
	if err != nil {
		return nil, err
	}
	return overlay.ToGray(img), nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if isRemote(path) {
		return l.dl.Get(path)
	}

	bs, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableInput, path, err)
	}

	return bs, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
