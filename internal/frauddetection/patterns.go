package frauddetection

import (
	"fmt"
	"strings"
)

// PatternDetector flags suspicious lexical patterns in review text.
// Detected reasons are returned in fixed check order: repetition, suspicious
// language, spam indicators, generic phrasing.
type PatternDetector struct {
	lexicon *Lexicon
}

// NewPatternDetector creates a new pattern detector
func NewPatternDetector(lexicon *Lexicon) *PatternDetector {
	return &PatternDetector{lexicon: lexicon}
}

// Detect returns a reason label for every pattern check that fires.
// The suspicious/spam reasons quote the pattern source so downstream
// investigators can see exactly which rule matched.
func (d *PatternDetector) Detect(text string) []string {
	patterns := make([]string, 0)

	// Excessive repetition; only meaningful on texts of more than 10 words
	words := strings.Fields(strings.ToLower(text))
	if len(words) > 10 {
		freq := make(map[string]int, len(words))
		maxFreq := 0
		for _, w := range words {
			freq[w]++
			if freq[w] > maxFreq {
				maxFreq = freq[w]
			}
		}
		if float64(maxFreq) > float64(len(words))*0.3 {
			patterns = append(patterns, "Excessive word repetition")
		}
	}

	for _, p := range d.lexicon.SuspiciousPatterns {
		if p.Matches(text) {
			patterns = append(patterns, fmt.Sprintf("Suspicious language pattern: %s", p.Source))
		}
	}

	for _, p := range d.lexicon.SpamIndicators {
		if p.Matches(text) {
			patterns = append(patterns, fmt.Sprintf("Spam indicator: %s", p.Source))
		}
	}

	lower := strings.ToLower(text)
	for _, phrase := range d.lexicon.GenericPhrases {
		if strings.Contains(lower, phrase) {
			patterns = append(patterns, "Generic review phrases")
			break
		}
	}

	return patterns
}
