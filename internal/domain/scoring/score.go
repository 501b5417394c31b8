package scoring

import (
	"math"
	"strings"

	"github.com/forPelevin/clipmine/internal/types"
)

// Quality labels by total score tier. Lower bounds are inclusive, so a
// total sitting exactly on a threshold takes the higher tier.
const (
	LabelViral = "viral"
	LabelGreat = "great"
	LabelGood  = "good"
	LabelMeh   = "meh"

	// LabelUnscored marks clips ranked by the legacy density scorer,
	// whose raw scores are not normalized to 0..10.
	LabelUnscored = "unscored"
)

// Scorecard is the composite result for one candidate span.
type Scorecard struct {
	Total      float64
	Dimensions types.DimensionScores
	Label      string
}

// Score rates a candidate's text across four 0..10 dimensions and
// combines them into a weighted total. Empty text or a non-positive
// duration short-circuits to all zeros; those are defined fallbacks,
// not errors. segmentCount is accepted for signature parity with
// Legacy but does not influence the smart score.
func Score(text string, duration float64, segmentCount int, targetDuration float64) Scorecard {
	if strings.TrimSpace(text) == "" || duration <= 0 {
		return Scorecard{Label: LabelMeh}
	}

	lower := strings.ToLower(text)
	a := analyze(text)

	engagement := scoreEngagement(text, lower, duration)
	emotion := scoreEmotion(a)
	coherence := scoreCoherence(text, a)
	virality := scoreVirality(lower, a.sentences)
	bonus := durationBonus(duration, targetDuration)

	weighted := engagement*0.30 + emotion*0.25 + coherence*0.15 + virality*0.20 + bonus*0.10
	total, label := finalizeTotal(weighted)

	return Scorecard{
		Total: total,
		Dimensions: types.DimensionScores{
			Engagement: round2(engagement),
			Emotion:    round2(emotion),
			Coherence:  round2(coherence),
			Virality:   round2(virality),
		},
		Label: label,
	}
}

// finalizeTotal clamps and rounds the weighted total, then derives the
// label from that rounded value so the reported score and label always
// agree at tier boundaries.
func finalizeTotal(weighted float64) (float64, string) {
	total := round2(math.Min(10, weighted))
	return total, labelFor(total)
}

// Legacy is the pre-NLP density scorer: words per second, segments per
// second and a sweet-spot bonus peaking at the target duration. Raw
// output, intentionally unbounded.
func Legacy(text string, duration float64, segmentCount int, targetDuration float64) float64 {
	if duration <= 0 {
		return 0
	}
	wordDensity := float64(wordCount(text)) / duration
	segmentDensity := float64(segmentCount) / duration
	bonus := math.Max(0, 1.0-math.Abs(duration-targetDuration)/targetDuration)
	return round3(wordDensity*2.0 + segmentDensity*1.5 + bonus*1.0)
}

func scoreEngagement(text, lower string, duration float64) float64 {
	hookHits := countHits(lower, hookPatterns)
	ctaHits := countHits(lower, ctaPatterns)
	questions := strings.Count(text, "?")
	exclamations := strings.Count(text, "!")

	wps := float64(wordCount(text)) / duration

	hookScore := math.Min(10, float64(hookHits)*2.0)
	questionScore := math.Min(10, float64(questions)*2.5)
	exclamationScore := math.Min(10, float64(exclamations)*1.5)
	ctaScore := math.Min(10, float64(ctaHits)*3.0)

	// Speech-rate sweet spot is 2.5-3.5 words per second; slower reads
	// as low energy and is penalized linearly.
	var densityScore float64
	if wps >= 2.5 {
		densityScore = math.Min(10, wps/3.0*7.0)
	} else {
		densityScore = math.Max(0, wps/2.5*5.0)
	}

	combined := hookScore*0.30 +
		questionScore*0.20 +
		exclamationScore*0.15 +
		ctaScore*0.10 +
		densityScore*0.25
	return math.Min(10, combined)
}

func scoreEmotion(a analysis) float64 {
	// Intensity matters, not direction: strongly positive and strongly
	// negative spans are equally engaging.
	intensity := math.Abs(a.polarity)

	swingBonus := 0.0
	if len(a.sentencePolarity) > 1 {
		swingBonus = math.Min(3.0, variance(a.sentencePolarity)*10.0)
	}

	subjectivityScore := a.subjectivity * 6.0

	return math.Min(10, intensity*8.0+swingBonus+subjectivityScore*0.3)
}

func scoreCoherence(text string, a analysis) float64 {
	words := contentWords(text)
	if len(words) < 5 {
		return 5.0
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	repetitionRatio := 1.0 - float64(len(unique))/float64(len(words))

	npDensity := float64(a.nounPhrases) / math.Max(1, float64(len(a.sentences)))

	consistency := 0.7
	if len(a.sentences) > 1 {
		lengths := make([]float64, 0, len(a.sentences))
		sum := 0.0
		for _, s := range a.sentences {
			n := float64(wordCount(s))
			lengths = append(lengths, n)
			sum += n
		}
		avg := sum / float64(len(lengths))
		consistency = math.Max(0, 1.0-variance(lengths)/math.Max(1, avg*avg))
	}

	score := repetitionRatio*12.0 + math.Min(5.0, npDensity*2.0) + consistency*3.0
	return math.Min(10, score)
}

func scoreVirality(lower string, sentences []string) float64 {
	viralHits := countHits(lower, viralPatterns)
	storyHits := countHits(lower, storyPatterns)
	superlatives := len(reSuperlative.FindAllStringIndex(lower, -1))
	numbers := len(reNumber.FindAllStringIndex(lower, -1))

	punchy := 0
	for _, s := range sentences {
		if wordCount(s) <= 8 {
			punchy++
		}
	}
	punchRatio := float64(punchy) / math.Max(1, float64(len(sentences)))

	viralScore := math.Min(10, float64(viralHits)*1.8)
	storyScore := math.Min(10, float64(storyHits)*2.5)
	superlativeScore := math.Min(5, float64(superlatives)*1.0)
	punchScore := punchRatio * 4.0
	numberScore := math.Min(3, float64(numbers)*0.5)

	combined := viralScore*0.35 +
		storyScore*0.25 +
		superlativeScore*0.15 +
		punchScore*0.15 +
		numberScore*0.10
	return math.Min(10, combined)
}

// durationBonus peaks at the target duration and falls off linearly to
// zero at 0s and 2x target.
func durationBonus(duration, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Max(0, 10.0-math.Abs(duration-target)/target*10.0)
}

func labelFor(total float64) string {
	switch {
	case total >= 7.0:
		return LabelViral
	case total >= 5.0:
		return LabelGreat
	case total >= 3.0:
		return LabelGood
	default:
		return LabelMeh
	}
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
