package scoring

import "regexp"

// Pattern banks ported from hand-tuned keyword lists. The wording and
// weights are deliberate; do not re-tune without new data.

var hookPatterns = compileBank(
	`\b(here'?s the thing|the truth is|let me tell you|listen)\b`,
	`\b(you need to|you have to|you should|you must)\b`,
	`\b(number one|first of all|most important)\b`,
	`\b(secret|hack|trick|tip|mistake|problem)\b`,
	`\b(never|always|every single|literally)\b`,
	`\b(crazy|insane|unbelievable|incredible|amazing|mind.?blowing)\b`,
	`\b(broke|blew my mind|changed my life|game.?changer)\b`,
	`\b(don'?t make this mistake|stop doing|warning)\b`,
)

var viralPatterns = compileBank(
	`\b(controversial|unpopular opinion|hot take|hear me out)\b`,
	`\b(no one talks about|they don'?t want you to know)\b`,
	`\b(plot twist|wait for it|you won'?t believe)\b`,
	`\b(worst|best|biggest|most underrated|overrated)\b`,
	`\b(debate|fight me|disagree|wrong|right)\b`,
	`\b(money|income|salary|million|billion|expensive|free)\b`,
	`\b(fail|success|win|lose|destroy|dominate)\b`,
	`\b(story ?time|so basically|okay so)\b`,
)

var storyPatterns = compileBank(
	`\b(so what happened was|long story short|basically)\b`,
	`\b(and then|but then|suddenly|out of nowhere)\b`,
	`\b(turned out|ended up|realized|found out)\b`,
	`\b(i remember|i was|we were|this one time)\b`,
	`\b(beginning|middle|end|finally|eventually)\b`,
)

var ctaPatterns = compileBank(
	`\b(subscribe|like|comment|share|follow|click|check out|link)\b`,
	`\b(let me know|tell me|what do you think|drop a comment)\b`,
	`\b(smash that|hit the|leave a)\b`,
)

var (
	reSuperlative = regexp.MustCompile(`(?i)\b(best|worst|most|least|always|never|every|none)\b`)
	reNumber      = regexp.MustCompile(`\b\d+\b`)
)

func compileBank(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// countHits sums matches across all patterns in a bank, without
// deduplicating overlapping hits from different patterns.
func countHits(text string, bank []*regexp.Regexp) int {
	total := 0
	for _, re := range bank {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}
