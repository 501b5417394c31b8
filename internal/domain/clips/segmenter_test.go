package clips

import (
	"testing"

	"github.com/forPelevin/clipmine/internal/types"
)

func TestSubSegments_SplitsOnLongGaps(t *testing.T) {
	segments := []types.Segment{
		{Start: 0, End: 10, Text: "words", Words: []types.Word{
			{Start: 0, End: 1, Word: "a"},
			{Start: 1.2, End: 2, Word: "b"}, // 0.2s gap, below threshold
			{Start: 5, End: 6, Word: "c"},   // 3s gap, splits
		}},
	}
	got := subSegments(segments, 0.8)
	want := []types.Span{{Start: 0, End: 2}, {Start: 5, End: 6}}
	if len(got) != len(want) {
		t.Fatalf("expected %d sub segments, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sub segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSubSegments_NoWordsCoversWholeSpan(t *testing.T) {
	segments := []types.Segment{
		{Start: 3, End: 12, Text: "one"},
		{Start: 12, End: 25, Text: "two"},
	}
	got := subSegments(segments, 0.8)
	if len(got) != 1 {
		t.Fatalf("expected a single covering span, got %+v", got)
	}
	if got[0] != (types.Span{Start: 3, End: 25}) {
		t.Fatalf("unexpected span %+v", got[0])
	}
}

func TestSubSegments_WordsAcrossSegments(t *testing.T) {
	segments := []types.Segment{
		{Start: 0, End: 5, Words: []types.Word{
			{Start: 0.5, End: 1, Word: "a"},
			{Start: 1.1, End: 2, Word: "b"},
		}},
		{Start: 5, End: 10, Words: []types.Word{
			{Start: 5.1, End: 6, Word: "c"}, // 3.1s gap from previous word
			{Start: 6.2, End: 7, Word: "d"},
		}},
	}
	got := subSegments(segments, 0.8)
	want := []types.Span{{Start: 0.5, End: 2}, {Start: 5.1, End: 7}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("sub segments = %+v, want %+v", got, want)
	}
}

func TestSubSegments_CoversEveryWord(t *testing.T) {
	segments := []types.Segment{
		{Start: 0, End: 30, Words: []types.Word{
			{Start: 0, End: 1, Word: "a"},
			{Start: 2.5, End: 3, Word: "b"},
			{Start: 3.1, End: 4, Word: "c"},
			{Start: 10, End: 11, Word: "d"},
		}},
	}
	got := subSegments(segments, 0.8)
	for i := 1; i < len(got); i++ {
		if got[i-1].End > got[i].Start {
			t.Fatalf("sub segments overlap: %+v", got)
		}
		if got[i-1].Start > got[i].Start {
			t.Fatalf("sub segments out of order: %+v", got)
		}
	}
	for _, w := range segments[0].Words {
		covered := false
		for _, s := range got {
			if w.Start >= s.Start && w.End <= s.End {
				covered = true
				break
			}
		}
		if !covered {
			t.Fatalf("word %+v not covered by %+v", w, got)
		}
	}
}

func TestSubSegments_Empty(t *testing.T) {
	if got := subSegments(nil, 0.8); got != nil {
		t.Fatalf("expected nil for no segments, got %+v", got)
	}
}
