package frauddetection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/EddyKilonzo/CrediScore/pkg/common"
	"github.com/EddyKilonzo/CrediScore/pkg/config"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishReviewScored(ctx context.Context, event *ReviewScoredEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testEngineConfig() config.Engine {
	return config.Engine{
		FraudThreshold:       60,
		LowReputation:        30,
		ReceiptConfidenceMin: 0.5,
	}
}

// newTestService builds a service with a fixed clock so the receipt date
// checks are deterministic.
func newTestService() *Service {
	service := NewService(DefaultLexicon(), testEngineConfig(), NoopPublisher{})
	service.consistency = NewConsistencyValidatorWithClock(func() time.Time { return testNow })
	return service
}

func cleanRequest() *DetectFraudRequest {
	return &DetectFraudRequest{
		ReviewText:      "The food was really good. Excellent service overall, honestly.",
		ReceiptData:     &ReceiptData{Confidence: 0.9},
		BusinessDetails: BusinessDetails{Name: "Joe's Pizza"},
		UserReputation:  50,
	}
}

func TestDetectFraud_CleanReviewScoresZero(t *testing.T) {
	service := newTestService()

	result, err := service.DetectFraud(context.Background(), cleanRequest())
	require.NoError(t, err)

	assert.False(t, result.IsFraudulent)
	assert.Equal(t, 0, result.RiskScore)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.FraudReasons)
	assert.NotNil(t, result.FraudReasons)
}

func TestDetectFraud_ShortNeutralReview(t *testing.T) {
	service := newTestService()

	req := cleanRequest()
	req.ReviewText = "ok"

	result, err := service.DetectFraud(context.Background(), req)
	require.NoError(t, err)

	// Quality 0 (+25) and fully neutral sentiment (+15)
	assert.Equal(t, 40, result.RiskScore)
	assert.False(t, result.IsFraudulent)
	assert.InDelta(t, 0.40, result.Confidence, 1e-9)
	assert.Equal(t, []string{
		"Low text quality score: 0.0",
		"Overly neutral sentiment",
	}, result.FraudReasons)
}

func TestDetectFraud_SpamReviewFromLowReputationUser(t *testing.T) {
	service := newTestService()

	req := cleanRequest()
	req.ReviewText = "SCAM!!! www.x.com CALL NOW $$$"
	req.UserReputation = 10

	result, err := service.DetectFraud(context.Background(), req)
	require.NoError(t, err)

	// quality 25 + six patterns 60 + neutral 15 + reputation 20
	assert.Equal(t, 120, result.RiskScore)
	assert.True(t, result.IsFraudulent)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Len(t, result.FraudReasons, 9)
	assert.Contains(t, result.FraudReasons, "Low user reputation: 10")
}

func TestDetectFraud_ReputationContributesExactlyTwenty(t *testing.T) {
	service := newTestService()

	low := cleanRequest()
	low.UserReputation = 29
	high := cleanRequest()
	high.UserReputation = 30

	lowResult, err := service.DetectFraud(context.Background(), low)
	require.NoError(t, err)
	highResult, err := service.DetectFraud(context.Background(), high)
	require.NoError(t, err)

	assert.Equal(t, 20, lowResult.RiskScore-highResult.RiskScore)
	assert.Contains(t, lowResult.FraudReasons, "Low user reputation: 29")
	assert.NotContains(t, highResult.FraudReasons, "Low user reputation: 30")
}

func TestDetectFraud_VerdictThresholdIsStrict(t *testing.T) {
	service := newTestService()

	// quality 25 + neutral 15 + reputation 20 = exactly 60: not fraudulent
	req := cleanRequest()
	req.ReviewText = "ok"
	req.UserReputation = 10

	result, err := service.DetectFraud(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 60, result.RiskScore)
	assert.False(t, result.IsFraudulent)
	assert.InDelta(t, 0.60, result.Confidence, 1e-9)

	// A low-confidence receipt adds 20 and crosses the threshold
	req.ReceiptData.Confidence = 0.4

	result, err = service.DetectFraud(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 80, result.RiskScore)
	assert.True(t, result.IsFraudulent)
	assert.InDelta(t, 0.80, result.Confidence, 1e-9)
	assert.Contains(t, result.FraudReasons, "Low receipt confidence: 0.40")
}

func TestDetectFraud_ReceiptIssuesWeighted(t *testing.T) {
	service := newTestService()

	req := cleanRequest()
	req.ReceiptData = &ReceiptData{
		BusinessName: strPtr("Completely Different LLC"),
		Amount:       floatPtr(-5.0),
		Confidence:   0.9,
	}

	result, err := service.DetectFraud(context.Background(), req)
	require.NoError(t, err)

	// Two consistency issues at 15 each
	assert.Equal(t, 30, result.RiskScore)
	assert.Equal(t, []string{
		"Business name mismatch (similarity: 0.17)",
		"Invalid amount in receipt",
	}, result.FraudReasons)
}

func TestDetectFraud_MissingReceiptSkipsReceiptChecks(t *testing.T) {
	service := newTestService()

	req := cleanRequest()
	req.ReceiptData = nil

	result, err := service.DetectFraud(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, result.RiskScore)
	assert.Empty(t, result.FraudReasons)
}

func TestDetectFraud_Idempotent(t *testing.T) {
	service := newTestService()

	req := cleanRequest()
	req.ReviewText = "SCAM!!! www.x.com CALL NOW $$$"
	req.UserReputation = 10
	req.ReceiptData.Date = strPtr(testNow.Add(24 * time.Hour).Format(time.RFC3339))

	first, err := service.DetectFraud(context.Background(), req)
	require.NoError(t, err)
	second, err := service.DetectFraud(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDetectFraud_InternalFaultMapsToGenericError(t *testing.T) {
	// A nil lexicon makes the quality scorer panic; the boundary must
	// recover and return a single generic failure with no partial result
	service := NewService(nil, testEngineConfig(), nil)

	result, err := service.DetectFraud(context.Background(), cleanRequest())
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	assert.Equal(t, "fraud detection failed", appErr.Message)
	assert.Equal(t, 500, appErr.StatusCode)
}

func TestDetectFraud_PublishesReviewScoredEvent(t *testing.T) {
	publisher := new(mockPublisher)
	service := NewService(DefaultLexicon(), testEngineConfig(), publisher)
	service.consistency = NewConsistencyValidatorWithClock(func() time.Time { return testNow })

	publisher.On("PublishReviewScored", mock.Anything, mock.MatchedBy(func(event *ReviewScoredEvent) bool {
		return event.BusinessName == "Joe's Pizza" &&
			!event.IsFraudulent &&
			event.RiskScore == 0 &&
			event.EventID != ""
	})).Return(nil).Once()

	_, err := service.DetectFraud(context.Background(), cleanRequest())
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestDetectFraud_PublishFailureDoesNotAffectResult(t *testing.T) {
	publisher := new(mockPublisher)
	service := NewService(DefaultLexicon(), testEngineConfig(), publisher)
	service.consistency = NewConsistencyValidatorWithClock(func() time.Time { return testNow })

	publisher.On("PublishReviewScored", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	result, err := service.DetectFraud(context.Background(), cleanRequest())
	require.NoError(t, err)
	assert.NotNil(t, result)
	publisher.AssertExpectations(t)
}
