package clips

import "github.com/forPelevin/clipmine/internal/types"

// subSegments splits a selected clip's segments into contiguous speech
// sub-ranges separated by word gaps longer than gapThreshold seconds.
// Without word timestamps the whole span is returned as one sub-range,
// so the cutting side always gets something usable.
func subSegments(segments []types.Segment, gapThreshold float64) []types.Span {
	if len(segments) == 0 {
		return nil
	}

	var words []types.Word
	for _, s := range segments {
		words = append(words, s.Words...)
	}
	if len(words) == 0 {
		return []types.Span{{Start: segments[0].Start, End: segments[len(segments)-1].End}}
	}

	out := []types.Span{}
	cur := types.Span{Start: words[0].Start, End: words[0].End}
	for _, w := range words[1:] {
		if w.Start-cur.End > gapThreshold {
			out = append(out, cur)
			cur = types.Span{Start: w.Start, End: w.End}
			continue
		}
		if w.End > cur.End {
			cur.End = w.End
		}
	}
	return append(out, cur)
}
