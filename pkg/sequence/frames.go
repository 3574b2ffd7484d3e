package sequence

import (
	"image"
	"time"
)

// FrameSequence is an ordered frame list with per-frame display durations,
// alternating plain image and overlay. Built in memory, written once.
type FrameSequence struct {
	Frames    []*image.NRGBA
	Durations []time.Duration
	LoopCount int // 0 = loop forever
}

func (s *FrameSequence) TotalDuration() time.Duration {
	var total time.Duration
	for _, d := range s.Durations {
		total += d
	}
	return total
}
