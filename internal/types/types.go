package types

import "time"

type Transcript struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words,omitempty"`
}

type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// Span is a time range in seconds. Two spans overlap when
// a.Start < b.End && a.End > b.Start; touching endpoints do not overlap.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// DimensionScores are the four normalized 0..10 quality axes.
type DimensionScores struct {
	Engagement float64 `json:"engagement"`
	Emotion    float64 `json:"emotion"`
	Coherence  float64 `json:"coherence"`
	Virality   float64 `json:"virality"`
}

// Clip is a selected, non-overlapping time range worth extracting.
// SubSegments is populated only when smart editing ran and word
// timestamps were available; each sub-range covers continuous speech.
type Clip struct {
	Start       float64         `json:"start"`
	End         float64         `json:"end"`
	Text        string          `json:"text"`
	Score       float64         `json:"score"`
	Dimensions  DimensionScores `json:"dimensions"`
	Label       string          `json:"label"`
	SubSegments []Span          `json:"sub_segments,omitempty"`
}

func (c Clip) Duration() float64 { return c.End - c.Start }

// Run is one persisted analysis of a transcript.
type Run struct {
	ID        string
	Source    string
	Status    string // analyzing | done | error
	Error     string
	Clips     []Clip
	CreatedAt time.Time
}

type Manifest struct {
	RunID  string         `json:"run_id"`
	Source string         `json:"source"`
	Clips  []ManifestClip `json:"clips"`
}

type ManifestClip struct {
	ID          string          `json:"id"`
	StartSec    float64         `json:"start_sec"`
	EndSec      float64         `json:"end_sec"`
	DurationSec float64         `json:"duration_sec"`
	Score       float64         `json:"score"`
	Label       string          `json:"label"`
	Dimensions  DimensionScores `json:"dimensions"`
	Text        string          `json:"text"`
	SubSegments []Span          `json:"sub_segments,omitempty"`
}
