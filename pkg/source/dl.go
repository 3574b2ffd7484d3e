package source

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func newDownloader(logger *zap.Logger) *downloader {
	return &downloader{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

type downloader struct {
	cli *resty.Client
	log *zap.Logger
}

func (d *downloader) Get(url string) ([]byte, error) {
	resp, err := d.cli.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableInput, url, err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w %s: status %d", ErrUnreadableInput, url, resp.StatusCode())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableInput, url, err)
	}

	d.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("fetched")
	return buf.Bytes(), nil
}
