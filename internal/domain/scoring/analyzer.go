package scoring

import (
	"strings"
	"unicode"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
	"github.com/jdkato/prose/v2"
)

// analysis holds the per-span NLP signals the scorer composes. All
// fields are plain values so the scorer stays a pure function of them.
type analysis struct {
	sentences        []string
	polarity         float64 // whole-span, -1..1
	subjectivity     float64 // 0..1
	sentencePolarity []float64
	nounPhrases      int
}

// analyze runs sentence segmentation, POS tagging and sentiment over a
// candidate's text. Falls back to treating the whole text as a single
// sentence when the tagger cannot process it.
func analyze(text string) analysis {
	a := analysis{}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err == nil {
		for _, s := range doc.Sentences() {
			if t := strings.TrimSpace(s.Text); t != "" {
				a.sentences = append(a.sentences, t)
			}
		}
		a.nounPhrases = countNounPhrases(doc.Tokens())
	}
	if len(a.sentences) == 0 {
		a.sentences = []string{text}
	}

	a.polarity, a.subjectivity = sentiment(text)
	a.sentencePolarity = make([]float64, 0, len(a.sentences))
	for _, s := range a.sentences {
		p, _ := sentiment(s)
		a.sentencePolarity = append(a.sentencePolarity, p)
	}
	return a
}

// sentiment returns (polarity -1..1, subjectivity 0..1) for a text.
// Subjectivity is the non-neutral token mass reported by the lexicon.
func sentiment(text string) (float64, float64) {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)
	subj := score.Positive + score.Negative
	if subj > 1 {
		subj = 1
	}
	return score.Compound, subj
}

// countNounPhrases counts shallow noun phrases: maximal runs of
// determiner/adjective/noun tags that contain at least one noun.
func countNounPhrases(tokens []prose.Token) int {
	count := 0
	inChunk := false
	hasNoun := false
	flush := func() {
		if inChunk && hasNoun {
			count++
		}
		inChunk = false
		hasNoun = false
	}
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			inChunk = true
			hasNoun = true
		case tok.Tag == "DT" || strings.HasPrefix(tok.Tag, "JJ"):
			inChunk = true
		default:
			flush()
		}
	}
	flush()
	return count
}

// contentWords lowercases and strips punctuation from whitespace-split
// tokens, keeping only words longer than three runes.
func contentWords(text string) []string {
	var out []string
	for _, f := range strings.Fields(text) {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(w)) > 3 {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

func wordCount(text string) int { return len(strings.Fields(text)) }

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
