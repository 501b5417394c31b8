// Package clips turns a time-ordered transcript into a ranked,
// non-overlapping set of clip time ranges. The engine is pure,
// synchronous computation over the caller's snapshot: no I/O, no
// shared state, no mutation of the input.
package clips

import (
	"errors"
	"fmt"
	"math"

	"github.com/forPelevin/clipmine/internal/types"
)

// ErrInvalidInput marks transcript shape errors (NaN timestamps,
// end before start). Everything else inside the engine is a defined
// fallback, never an error.
var ErrInvalidInput = errors.New("invalid transcript input")

// Options are the per-call engine knobs. Durations are seconds.
//
// Start from DefaultOptions and adjust: Find backfills only
// non-positive numeric fields, so a zero Options keeps SmartScoring
// and SmartEdit off rather than getting the defaults.
type Options struct {
	MinClipDuration    float64
	MaxClipDuration    float64
	TargetClipDuration float64
	MaxClips           int
	GapThreshold       float64
	SmartEdit          bool
	SmartScoring       bool
}

func DefaultOptions() Options {
	return Options{
		MinClipDuration:    15,
		MaxClipDuration:    90,
		TargetClipDuration: 45,
		MaxClips:           10,
		GapThreshold:       0.8,
		SmartEdit:          false,
		SmartScoring:       true,
	}
}

// normalized fills non-positive knobs from the defaults so a partially
// populated Options stays usable.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.MinClipDuration <= 0 {
		o.MinClipDuration = def.MinClipDuration
	}
	if o.MaxClipDuration <= 0 {
		o.MaxClipDuration = def.MaxClipDuration
	}
	if o.TargetClipDuration <= 0 {
		o.TargetClipDuration = def.TargetClipDuration
	}
	if o.MaxClips <= 0 {
		o.MaxClips = def.MaxClips
	}
	if o.GapThreshold <= 0 {
		o.GapThreshold = def.GapThreshold
	}
	return o
}

// Find analyzes transcript segments and returns the best clips,
// ordered by start time. An empty transcript yields an empty result,
// not an error.
func Find(segments []types.Segment, opts Options) ([]types.Clip, error) {
	if err := validate(segments); err != nil {
		return nil, err
	}
	opts = opts.normalized()
	if opts.MinClipDuration > opts.MaxClipDuration {
		return nil, fmt.Errorf("%w: min clip duration %.1fs exceeds max %.1fs",
			ErrInvalidInput, opts.MinClipDuration, opts.MaxClipDuration)
	}

	cands := generate(segments, opts)
	selected := selectClips(cands, opts.MaxClips)

	out := make([]types.Clip, 0, len(selected))
	for _, c := range selected {
		clip := types.Clip{
			Start:      c.start,
			End:        c.end,
			Text:       c.text,
			Score:      c.score,
			Dimensions: c.dims,
			Label:      c.label,
		}
		if opts.SmartEdit {
			clip.SubSegments = subSegments(segments[c.firstSeg:c.lastSeg+1], opts.GapThreshold)
		}
		out = append(out, clip)
	}
	return out, nil
}

func validate(segments []types.Segment) error {
	for i, s := range segments {
		if !finite(s.Start) || !finite(s.End) {
			return fmt.Errorf("%w: segment %d has non-finite timestamps", ErrInvalidInput, i)
		}
		if s.Start < 0 {
			return fmt.Errorf("%w: segment %d starts at %.3fs", ErrInvalidInput, i, s.Start)
		}
		if s.End < s.Start {
			return fmt.Errorf("%w: segment %d ends (%.3fs) before it starts (%.3fs)",
				ErrInvalidInput, i, s.End, s.Start)
		}
		for j, w := range s.Words {
			if !finite(w.Start) || !finite(w.End) {
				return fmt.Errorf("%w: segment %d word %d has non-finite timestamps", ErrInvalidInput, i, j)
			}
			if w.End < w.Start {
				return fmt.Errorf("%w: segment %d word %d ends before it starts", ErrInvalidInput, i, j)
			}
		}
	}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
