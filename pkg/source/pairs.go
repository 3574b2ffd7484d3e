package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Pair struct {
	Image string
	Mask  string
}

// MatchPairs pairs every image in imageDir with the mask of the same
// filename in maskDir, sorted by name. Images without a counterpart are
// skipped with a log line, not an error.
func MatchPairs(fs afero.Fs, imageDir, maskDir string, logger *zap.Logger) ([]Pair, error) {
	names, err := listFiles(fs, imageDir)
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	var pairs []Pair
	for _, name := range names {
		maskPath := filepath.Join(maskDir, name)
		if exists, err := afero.Exists(fs, maskPath); err != nil {
			return nil, err
		} else if !exists {
			logger.With(zap.String("image", name)).Info("no mask found, skipping")
			continue
		}
		pairs = append(pairs, Pair{Image: filepath.Join(imageDir, name), Mask: maskPath})
	}

	return pairs, nil
}

func listFiles(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableInput, dir, err)
	}

	files := lo.Filter(infos, func(fi os.FileInfo, _ int) bool {
		return !fi.IsDir()
	})

	return lo.Map(files, func(fi os.FileInfo, _ int) string {
		return fi.Name()
	}), nil
}
