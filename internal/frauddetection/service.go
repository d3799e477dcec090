package frauddetection

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/EddyKilonzo/CrediScore/pkg/common"
	"github.com/EddyKilonzo/CrediScore/pkg/config"
	"github.com/EddyKilonzo/CrediScore/pkg/logger"
)

// Risk weights applied by the aggregator. The verdict threshold lives in
// config; the weights are part of the scoring contract and fixed.
const (
	lowQualityThreshold = 30.0
	neutralThreshold    = 0.8

	lowQualityWeight       = 25
	patternWeight          = 10
	neutralSentimentWeight = 15
	lowReputationWeight    = 20
	consistencyIssueWeight = 15
	lowConfidenceWeight    = 20
)

// Service runs the fraud risk scoring engine: each analyzer is invoked once
// per request and their outputs are combined into a single verdict. Scoring
// is a pure function of the request (the receipt date checks use the
// validator's clock), so the service is safe for concurrent use.
type Service struct {
	quality     *TextQualityScorer
	patterns    *PatternDetector
	sentiment   *SentimentEstimator
	consistency *ConsistencyValidator
	cfg         config.Engine
	events      Publisher
}

// NewService creates a new fraud detection service
func NewService(lexicon *Lexicon, cfg config.Engine, events Publisher) *Service {
	if events == nil {
		events = NoopPublisher{}
	}
	return &Service{
		quality:     NewTextQualityScorer(lexicon),
		patterns:    NewPatternDetector(lexicon),
		sentiment:   NewSentimentEstimator(lexicon),
		consistency: NewConsistencyValidator(),
		cfg:         cfg,
		events:      events,
	}
}

// DetectFraud scores a review with its receipt and claimed business
// identity. Any internal fault is mapped to a single generic error with no
// partial result.
func (s *Service) DetectFraud(ctx context.Context, req *DetectFraudRequest) (resp *DetectFraudResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithContext(ctx).Error("Fraud detection panicked", zap.Any("error", r))
			resp = nil
			err = common.NewInternalServerError("fraud detection failed")
		}
	}()

	fraudReasons := make([]string, 0)
	riskScore := 0

	// Analyze review text quality
	quality := s.quality.Score(req.ReviewText)
	if quality < lowQualityThreshold {
		fraudReasons = append(fraudReasons, fmt.Sprintf("Low text quality score: %.1f", quality))
		riskScore += lowQualityWeight
	}

	// Detect suspicious patterns
	patterns := s.patterns.Detect(req.ReviewText)
	fraudReasons = append(fraudReasons, patterns...)
	riskScore += len(patterns) * patternWeight

	// Analyze sentiment
	sentiment := s.sentiment.Estimate(req.ReviewText)
	if sentiment.Neutral > neutralThreshold {
		fraudReasons = append(fraudReasons, "Overly neutral sentiment")
		riskScore += neutralSentimentWeight
	}

	// Check user reputation
	if req.UserReputation < s.cfg.LowReputation {
		fraudReasons = append(fraudReasons, fmt.Sprintf("Low user reputation: %d", req.UserReputation))
		riskScore += lowReputationWeight
	}

	// Validate receipt consistency
	if req.ReceiptData != nil {
		issues := s.consistency.Validate(req.ReceiptData, &req.BusinessDetails)
		fraudReasons = append(fraudReasons, issues...)
		riskScore += len(issues) * consistencyIssueWeight

		if req.ReceiptData.Confidence < s.cfg.ReceiptConfidenceMin {
			fraudReasons = append(fraudReasons, fmt.Sprintf("Low receipt confidence: %.2f", req.ReceiptData.Confidence))
			riskScore += lowConfidenceWeight
		}
	}

	// Confidence is linear in the score and deliberately independent of the
	// verdict threshold; it does not reach 1.0 until the score hits 100.
	isFraudulent := riskScore > s.cfg.FraudThreshold
	confidence := math.Min(float64(riskScore)/100, 1.0)

	resp = &DetectFraudResponse{
		IsFraudulent: isFraudulent,
		Confidence:   confidence,
		FraudReasons: fraudReasons,
		RiskScore:    riskScore,
	}

	verdict := "legitimate"
	if isFraudulent {
		verdict = "fraudulent"
	}
	reviewsScoredTotal.WithLabelValues(verdict).Inc()
	riskScoreDistribution.Observe(float64(riskScore))

	logger.WithContext(ctx).Info("Fraud detection completed",
		zap.Int("risk_score", riskScore),
		zap.Bool("is_fraudulent", isFraudulent),
		zap.Int("reasons", len(fraudReasons)),
	)

	if publishErr := s.events.PublishReviewScored(ctx, newReviewScoredEvent(req.BusinessDetails.Name, resp, time.Now())); publishErr != nil {
		// Event delivery is best-effort; scoring already succeeded.
		logger.WithContext(ctx).Warn("Failed to publish review scored event", zap.Error(publishErr))
	}

	return resp, nil
}
