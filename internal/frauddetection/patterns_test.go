package frauddetection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDetector() *PatternDetector {
	return NewPatternDetector(DefaultLexicon())
}

func TestPatternDetector_CleanText(t *testing.T) {
	detector := newTestDetector()

	patterns := detector.Detect("The pasta arrived quickly and the staff were friendly.")
	assert.Empty(t, patterns)
}

func TestPatternDetector_EmptyText(t *testing.T) {
	detector := newTestDetector()

	patterns := detector.Detect("")
	assert.Empty(t, patterns)
}

func TestPatternDetector_SpamReviewFlagsAllMatches(t *testing.T) {
	detector := newTestDetector()

	patterns := detector.Detect("SCAM!!! www.x.com CALL NOW $$$")

	// Reasons come out in fixed check order and quote the matching rule
	assert.Equal(t, []string{
		`Suspicious language pattern: \b(fake|scam|fraud|cheat|steal|rob)\b`,
		`Suspicious language pattern: \b(click here|visit|call now|limited time)\b`,
		`Spam indicator: [A-Z]{3,}`,
		`Spam indicator: !{3,}`,
		`Spam indicator: \$+`,
		`Spam indicator: www\.|http`,
	}, patterns)
}

func TestPatternDetector_ExcessiveRepetition(t *testing.T) {
	detector := newTestDetector()

	// 12 words, "spam" appears 5 times (> 30% of the token count)
	patterns := detector.Detect("spam spam spam spam spam is really very truly not nice here")
	assert.Equal(t, []string{"Excessive word repetition"}, patterns)
}

func TestPatternDetector_RepetitionNeedsEnoughWords(t *testing.T) {
	detector := newTestDetector()

	// Same dominant word but only 6 tokens; the repetition check requires
	// more than 10
	patterns := detector.Detect("spam spam spam spam spam yes")
	assert.Empty(t, patterns)
}

func TestPatternDetector_GenericPhrasesReportedOnce(t *testing.T) {
	detector := newTestDetector()

	// Two generic phrases still produce a single reason
	patterns := detector.Detect("Nice place, would recommend.")
	assert.Equal(t, []string{"Generic review phrases"}, patterns)
}

func TestPatternDetector_SuspiciousCaseInsensitive(t *testing.T) {
	detector := newTestDetector()

	patterns := detector.Detect("this is a FrAuD i think")
	assert.Equal(t, []string{`Suspicious language pattern: \b(fake|scam|fraud|cheat|steal|rob)\b`}, patterns)
}

func TestPatternDetector_CustomLexicon(t *testing.T) {
	lexicon := &Lexicon{
		SuspiciousPatterns: []Pattern{NewPattern(`\bbogus\b`, true)},
		GenericPhrases:     []string{"meh"},
	}
	detector := NewPatternDetector(lexicon)

	patterns := detector.Detect("Bogus! meh")
	assert.Equal(t, []string{
		`Suspicious language pattern: \bbogus\b`,
		"Generic review phrases",
	}, patterns)
}
