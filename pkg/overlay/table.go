package overlay

import (
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Table maps mask label values to overlay colors. Labels absent from the
// table (including 0, the background convention) get no tint. Several labels
// may share one color, e.g. near-duplicate gray levels 126 and 127.
type Table map[uint8]color.NRGBA

// ParseTable builds a Table from a comma-separated list of label=hex
// entries, e.g. "255=#0000ff,126=#ff0000,127=#ff0000".
func ParseTable(spec string) (Table, error) {
	t := Table{}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, errors.Errorf("bad class color %q", part)
		}

		label, err := strconv.ParseUint(strings.TrimSpace(kv[0]), 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "bad label %q", kv[0])
		}

		c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(kv[1])))
		if err != nil {
			return nil, errors.Wrapf(err, "bad color %q", kv[1])
		}

		r, g, b := c.RGB255()
		t[uint8(label)] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}

	if len(t) == 0 {
		return nil, errors.New("empty class color table")
	}

	return t, nil
}
