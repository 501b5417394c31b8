package clips

import (
	"strings"
	"testing"

	"github.com/forPelevin/clipmine/internal/types"
)

func TestGenerate_RespectsDurationBounds(t *testing.T) {
	opts := testOptions()
	cands := generate(testSegments(), opts)
	if len(cands) == 0 {
		t.Fatalf("expected candidates")
	}
	for _, c := range cands {
		d := c.end - c.start
		if d < opts.MinClipDuration || d > opts.MaxClipDuration {
			t.Fatalf("candidate duration %v outside [%v, %v]", d, opts.MinClipDuration, opts.MaxClipDuration)
		}
	}
}

func TestGenerate_WindowEnumeration(t *testing.T) {
	// Four 10s segments with min=15 max=45: windows of 2, 3 and 4
	// segments qualify from every start index that can reach 15s.
	cands := generate(testSegments(), testOptions())
	want := 6 // [0,1] [0,2] [0,3] [1,2] [1,3] [2,3]
	if len(cands) != want {
		t.Fatalf("expected %d candidates, got %d", want, len(cands))
	}
	for _, c := range cands {
		if c.firstSeg > c.lastSeg {
			t.Fatalf("bad segment span: [%d, %d]", c.firstSeg, c.lastSeg)
		}
	}
}

func TestGenerate_JoinsTextInOrder(t *testing.T) {
	cands := generate(testSegments(), testOptions())
	for _, c := range cands {
		if c.firstSeg == 0 && c.lastSeg == 1 {
			want := "Here's the thing, this is amazing! You need to hear this incredible secret!"
			if c.text != want {
				t.Fatalf("joined text = %q, want %q", c.text, want)
			}
			return
		}
	}
	t.Fatalf("missing [0,1] window")
}

func TestGenerate_BreaksPastMaxDuration(t *testing.T) {
	segments := []types.Segment{
		{Start: 0, End: 100, Text: "way too long"},
		{Start: 100, End: 120, Text: "fits"},
	}
	opts := testOptions() // max 45
	cands := generate(segments, opts)
	for _, c := range cands {
		if c.firstSeg == 0 {
			t.Fatalf("oversized leading segment should yield no windows, got [%d,%d]", c.firstSeg, c.lastSeg)
		}
	}
	// The second start index still produces its own window.
	found := false
	for _, c := range cands {
		if c.firstSeg == 1 && c.lastSeg == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the 20s trailing segment as a candidate")
	}
}

func TestGenerate_SkipsEmptySegmentText(t *testing.T) {
	segments := []types.Segment{
		{Start: 0, End: 10, Text: "First part."},
		{Start: 10, End: 20, Text: "   "},
		{Start: 20, End: 30, Text: "Last part."},
	}
	cands := generate(segments, testOptions())
	for _, c := range cands {
		if strings.Contains(c.text, "  ") {
			t.Fatalf("blank segment text leaked into join: %q", c.text)
		}
	}
}

func TestGenerate_NoSegments(t *testing.T) {
	if cands := generate(nil, testOptions()); len(cands) != 0 {
		t.Fatalf("expected no candidates, got %d", len(cands))
	}
}
