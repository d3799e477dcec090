package frauddetection

import "strings"

// SentimentEstimator produces a crude lexical sentiment split of a review.
// Word hits are substring containment against the lower-cased text, so
// "goods" counts as a hit for "good"; each lexicon word counts at most once.
type SentimentEstimator struct {
	lexicon *Lexicon
}

// NewSentimentEstimator creates a new sentiment estimator
func NewSentimentEstimator(lexicon *Lexicon) *SentimentEstimator {
	return &SentimentEstimator{lexicon: lexicon}
}

// Estimate returns the sentiment split for text. A text with no words is
// entirely neutral.
func (e *SentimentEstimator) Estimate(text string) Sentiment {
	totalWords := len(strings.Fields(text))
	if totalWords == 0 {
		return Sentiment{Positive: 0.0, Negative: 0.0, Neutral: 1.0}
	}

	lower := strings.ToLower(text)

	positiveCount := 0
	for _, w := range e.lexicon.PositiveWords {
		if strings.Contains(lower, w) {
			positiveCount++
		}
	}

	negativeCount := 0
	for _, w := range e.lexicon.NegativeWords {
		if strings.Contains(lower, w) {
			negativeCount++
		}
	}

	positive := float64(positiveCount) / float64(totalWords)
	negative := float64(negativeCount) / float64(totalWords)
	neutral := 1.0 - positive - negative
	if neutral < 0 {
		neutral = 0.0
	}

	return Sentiment{Positive: positive, Negative: negative, Neutral: neutral}
}
