package frauddetection

import "regexp"

// Pattern pairs a regular expression with its raw source. Reason strings
// quote the source verbatim, so it is kept separate from the compiled form
// (the suspicious set is compiled case-insensitively without altering it).
type Pattern struct {
	Source string
	re     *regexp.Regexp
}

// NewPattern compiles source into a Pattern. The source must be a valid
// regular expression; lexicons are built at process start, so a bad entry
// fails fast via MustCompile.
func NewPattern(source string, caseInsensitive bool) Pattern {
	expr := source
	if caseInsensitive {
		expr = "(?i)" + source
	}
	return Pattern{Source: source, re: regexp.MustCompile(expr)}
}

// Matches reports whether the pattern matches anywhere in text
func (p Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// Lexicon holds the pattern and word tables the analyzers score against.
// It is immutable after construction and shared across requests; tests
// substitute their own instance.
type Lexicon struct {
	// SuspiciousPatterns flag fraud/scam vocabulary, hype words, warning
	// phrases, paid-promotion disclosures and call-to-action spam.
	// Matched case-insensitively.
	SuspiciousPatterns []Pattern

	// SpamIndicators flag shouting, URLs and other low-effort spam tells.
	// Matched case-sensitively.
	SpamIndicators []Pattern

	PositiveWords []string
	NegativeWords []string

	// GenericPhrases are canned review phrases, positive and negative
	GenericPhrases []string
}

// DefaultLexicon returns the production lexicon
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		SuspiciousPatterns: []Pattern{
			NewPattern(`\b(fake|scam|fraud|cheat|steal|rob)\b`, true),
			NewPattern(`\b(too good to be true|amazing|incredible|perfect)\b`, true),
			NewPattern(`\b(avoid|stay away|don\'t go|terrible|awful|horrible)\b`, true),
			NewPattern(`\b(paid review|sponsored|advertisement)\b`, true),
			NewPattern(`\b(click here|visit|call now|limited time)\b`, true),
		},
		SpamIndicators: []Pattern{
			NewPattern(`[A-Z]{3,}`, false), // excessive caps
			NewPattern(`!{3,}`, false),     // multiple exclamation marks
			NewPattern(`\$+`, false),       // dollar signs
			NewPattern(`www\.|http`, false),
			NewPattern(`\d{10,}`, false), // long number sequences
		},
		PositiveWords: []string{
			"good", "great", "excellent", "amazing",
			"wonderful", "fantastic", "love", "best",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "horrible",
			"worst", "hate", "disgusting", "disappointed",
		},
		GenericPhrases: []string{
			"good service", "nice place", "would recommend", "great experience",
			"bad service", "terrible experience", "would not recommend",
		},
	}
}
