package sequence

import (
	"bytes"
	"image"
	"image/gif"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func testSequence(n int) *FrameSequence {
	seq := &FrameSequence{LoopCount: 2}
	for i := 0; i < n; i++ {
		seq.Frames = append(seq.Frames, image.NewNRGBA(image.Rect(0, 0, 4, 4)))
		seq.Durations = append(seq.Durations, 500*time.Millisecond)
	}
	return seq
}

func TestEncodeGIF(t *testing.T) {
	seq := &FrameSequence{LoopCount: 2}
	for i := 0; i < 4; i++ {
		seq.Frames = append(seq.Frames, image.NewNRGBA(image.Rect(0, 0, 4, 4)))
		dur := 400 * time.Millisecond
		if i%2 == 1 {
			dur = 1200 * time.Millisecond
		}
		seq.Durations = append(seq.Durations, dur)
	}

	var buf bytes.Buffer
	if err := seq.EncodeGIF(&buf); err != nil {
		t.Fatalf("encode error: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if len(decoded.Image) != 4 {
		t.Fatalf("frame count: %d", len(decoded.Image))
	}
	if decoded.LoopCount != 2 {
		t.Fatalf("loop count: %d", decoded.LoopCount)
	}

	wantDelays := []int{40, 120, 40, 120}
	for i, d := range decoded.Delay {
		if d != wantDelays[i] {
			t.Fatalf("delay %d: got %d, want %d", i, d, wantDelays[i])
		}
	}
}

func TestEncodeGIFEmpty(t *testing.T) {
	seq := &FrameSequence{}
	if err := seq.EncodeGIF(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for empty sequence")
	}
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	seq := testSequence(2)
	if err := seq.WriteFile(fs, "out/result.gif"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	bs, err := afero.ReadFile(fs, "out/result.gif")
	if err != nil {
		t.Fatalf("read back error: %v", err)
	}
	if _, err := gif.DecodeAll(bytes.NewReader(bs)); err != nil {
		t.Fatalf("written gif not decodable: %v", err)
	}
}

func TestWriteFileNoArtifactOnFailure(t *testing.T) {
	fs := afero.NewMemMapFs()

	// durations shorter than frames makes the encode fail
	seq := testSequence(2)
	seq.Durations = seq.Durations[:1]

	if err := seq.WriteFile(fs, "result.gif"); err == nil {
		t.Fatalf("expected encode failure")
	}

	if exists, _ := afero.Exists(fs, "result.gif"); exists {
		t.Fatalf("artifact written despite failure")
	}
}
