package sequence

import (
	"fmt"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/spf13/afero"
)

// WriteFile encodes the sequence into path through a temp file and renames
// it into place, so a failed encode leaves no artifact behind.
func (s *FrameSequence) WriteFile(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s", xid.New(), filepath.Base(path)))

	f, err := fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}

	if err := s.EncodeGIF(f); err != nil {
		_ = f.Close()
		_ = fs.Remove(tmp)
		return fmt.Errorf("encode gif: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = fs.Remove(tmp)
		return err
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("rename output: %w", err)
	}

	return nil
}
