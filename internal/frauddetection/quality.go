package frauddetection

import (
	"strings"
	"unicode/utf8"
)

// TextQualityScorer scores a review text for plausibility in [0, 100].
// Higher is more plausible; suspicious and spammy texts are penalized.
type TextQualityScorer struct {
	lexicon *Lexicon
}

// NewTextQualityScorer creates a new text quality scorer
func NewTextQualityScorer(lexicon *Lexicon) *TextQualityScorer {
	return &TextQualityScorer{lexicon: lexicon}
}

// Score returns the quality score for text. Texts shorter than 10
// characters after trimming score exactly 0.
func (s *TextQualityScorer) Score(text string) float64 {
	if text == "" || utf8.RuneCountInString(strings.TrimSpace(text)) < 10 {
		return 0.0
	}

	score := 0.0

	// Length score (optimal around 50-200 characters)
	length := utf8.RuneCountInString(text)
	switch {
	case length >= 50 && length <= 200:
		score += 30
	case (length >= 20 && length < 50) || (length > 200 && length <= 500):
		score += 20
	default:
		score += 10
	}

	// Sentence structure
	if len(strings.Split(text, ".")) > 1 {
		score += 20
	}

	// Word variety (avoid repetition)
	words := strings.Fields(strings.ToLower(text))
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	if float64(len(unique)) > float64(len(words))*0.7 {
		score += 20
	}

	// Punctuation and grammar
	if strings.ContainsAny(text, ".!?") {
		score += 10
	}

	// Penalty for suspicious patterns
	for _, p := range s.lexicon.SuspiciousPatterns {
		if p.Matches(text) {
			score -= 15
		}
	}

	// Penalty for spam indicators
	for _, p := range s.lexicon.SpamIndicators {
		if p.Matches(text) {
			score -= 10
		}
	}

	if score < 0 {
		return 0.0
	}
	if score > 100 {
		return 100.0
	}
	return score
}
