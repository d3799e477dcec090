package frauddetection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ReviewScoredEvent is published after every scored review so other
// CrediScore services (moderation, notifications) can react asynchronously.
type ReviewScoredEvent struct {
	EventID      string    `json:"event_id"`
	BusinessName string    `json:"business_name"`
	IsFraudulent bool      `json:"is_fraudulent"`
	RiskScore    int       `json:"risk_score"`
	Confidence   float64   `json:"confidence"`
	FraudReasons []string  `json:"fraud_reasons"`
	ScoredAt     time.Time `json:"scored_at"`
}

// Publisher publishes review-scored events
type Publisher interface {
	PublishReviewScored(ctx context.Context, event *ReviewScoredEvent) error
}

// NoopPublisher discards events; used when event publishing is disabled
type NoopPublisher struct{}

// PublishReviewScored implements Publisher
func (NoopPublisher) PublishReviewScored(ctx context.Context, event *ReviewScoredEvent) error {
	return nil
}

// NATSPublisher publishes review-scored events to a NATS subject
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to NATS and returns a publisher for subject
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("fraud-detection-service"))
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// PublishReviewScored implements Publisher. Publishing is fire-and-forget;
// a delivery failure never affects the scoring response.
func (p *NATSPublisher) PublishReviewScored(ctx context.Context, event *ReviewScoredEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(p.subject, data)
}

// Check reports connectivity for the health endpoint
func (p *NATSPublisher) Check() error {
	if status := p.conn.Status(); status != nats.CONNECTED {
		return fmt.Errorf("nats connection status: %s", status)
	}
	return nil
}

// Close drains and closes the underlying connection
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// newReviewScoredEvent builds the event for a completed scoring
func newReviewScoredEvent(businessName string, resp *DetectFraudResponse, scoredAt time.Time) *ReviewScoredEvent {
	return &ReviewScoredEvent{
		EventID:      uuid.New().String(),
		BusinessName: businessName,
		IsFraudulent: resp.IsFraudulent,
		RiskScore:    resp.RiskScore,
		Confidence:   resp.Confidence,
		FraudReasons: resp.FraudReasons,
		ScoredAt:     scoredAt,
	}
}
