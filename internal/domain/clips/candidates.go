package clips

import (
	"strings"

	"github.com/forPelevin/clipmine/internal/domain/scoring"
	"github.com/forPelevin/clipmine/internal/types"
)

// candidate is the engine-internal window bookkeeping. firstSeg and
// lastSeg index the caller's segment slice so sub-segmentation can
// recover the source words later; they never cross the public boundary.
type candidate struct {
	start float64
	end   float64
	text  string

	score float64
	dims  types.DimensionScores
	label string

	firstSeg int
	lastSeg  int
}

// generate enumerates every duration-valid window of consecutive
// segments and scores it in the same pass. For each start index the
// window grows segment by segment until it overshoots the max
// duration, so the O(n^2) worst case is truncated early on any
// reasonably paced transcript.
func generate(segments []types.Segment, opts Options) []candidate {
	var out []candidate
	for i := 0; i < len(segments); i++ {
		start := segments[i].Start
		var parts []string
		for j := i; j < len(segments); j++ {
			end := segments[j].End
			if t := strings.TrimSpace(segments[j].Text); t != "" {
				parts = append(parts, t)
			}
			duration := end - start
			if duration > opts.MaxClipDuration {
				break
			}
			if duration < opts.MinClipDuration {
				continue
			}

			c := candidate{
				start:    start,
				end:      end,
				text:     strings.Join(parts, " "),
				firstSeg: i,
				lastSeg:  j,
			}
			segmentCount := j - i + 1
			if opts.SmartScoring {
				card := scoring.Score(c.text, duration, segmentCount, opts.TargetClipDuration)
				c.score = card.Total
				c.dims = card.Dimensions
				c.label = card.Label
			} else {
				c.score = scoring.Legacy(c.text, duration, segmentCount, opts.TargetClipDuration)
				c.label = scoring.LabelUnscored
			}
			out = append(out, c)
		}
	}
	return out
}
