package frauddetection

import (
	"fmt"
	"strings"
	"time"
)

const (
	nameSimilarityThreshold    = 0.7
	addressSimilarityThreshold = 0.6
	maxReceiptAge              = 365 * 24 * time.Hour
)

// receiptDateLayouts are the accepted ISO-8601 shapes, tried in order.
// RFC 3339 covers the common extractor output including a trailing Z.
var receiptDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ConsistencyValidator cross-checks receipt fields against the claimed
// business identity and performs internal receipt sanity checks.
type ConsistencyValidator struct {
	now func() time.Time
}

// NewConsistencyValidator creates a validator using the wall clock
func NewConsistencyValidator() *ConsistencyValidator {
	return &ConsistencyValidator{now: time.Now}
}

// NewConsistencyValidatorWithClock creates a validator with an injected
// clock, for deterministic date checks in tests.
func NewConsistencyValidatorWithClock(now func() time.Time) *ConsistencyValidator {
	return &ConsistencyValidator{now: now}
}

// Validate returns every consistency issue found, in check order. All
// checks are independent; a malformed date is reported as an issue, never
// as an error.
func (v *ConsistencyValidator) Validate(receipt *ReceiptData, business *BusinessDetails) []string {
	issues := make([]string, 0)
	if receipt == nil || business == nil {
		return issues
	}

	if receipt.BusinessName != nil && *receipt.BusinessName != "" && business.Name != "" {
		nameSimilarity := stringSimilarity(
			strings.ToLower(*receipt.BusinessName),
			strings.ToLower(business.Name),
		)
		if nameSimilarity < nameSimilarityThreshold {
			issues = append(issues, fmt.Sprintf("Business name mismatch (similarity: %.2f)", nameSimilarity))
		}
	}

	if receipt.BusinessAddress != nil && *receipt.BusinessAddress != "" &&
		business.Address != nil && *business.Address != "" {
		addressSimilarity := stringSimilarity(
			strings.ToLower(*receipt.BusinessAddress),
			strings.ToLower(*business.Address),
		)
		if addressSimilarity < addressSimilarityThreshold {
			issues = append(issues, fmt.Sprintf("Address mismatch (similarity: %.2f)", addressSimilarity))
		}
	}

	if receipt.Amount != nil && *receipt.Amount <= 0 {
		issues = append(issues, "Invalid amount in receipt")
	}

	if receipt.Date != nil && *receipt.Date != "" {
		if issue := v.checkDate(*receipt.Date); issue != "" {
			issues = append(issues, issue)
		}
	}

	return issues
}

// checkDate reports at most one date issue, in priority order:
// malformed, then future, then stale.
func (v *ConsistencyValidator) checkDate(raw string) string {
	receiptDate, err := parseReceiptDate(raw)
	if err != nil {
		return "Invalid date format in receipt"
	}

	now := v.now()
	if receiptDate.After(now) {
		return "Future date in receipt"
	}
	if now.Sub(receiptDate) > maxReceiptAge {
		return "Receipt too old (>1 year)"
	}
	return ""
}

func parseReceiptDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range receiptDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
