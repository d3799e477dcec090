package frauddetection

// ReceiptData represents a machine-extracted receipt attached to a review.
// A nil field means the extractor did not find it, not that it was empty.
type ReceiptData struct {
	BusinessName    *string  `json:"businessName,omitempty"`
	BusinessAddress *string  `json:"businessAddress,omitempty"`
	BusinessPhone   *string  `json:"businessPhone,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Date            *string  `json:"date,omitempty"`
	Items           []string `json:"items,omitempty"`
	ReceiptNumber   *string  `json:"receiptNumber,omitempty"`
	Confidence      float64  `json:"confidence"`
}

// BusinessDetails is the business identity claimed by the posting account
type BusinessDetails struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
}

// DetectFraudRequest is the API request for fraud detection
type DetectFraudRequest struct {
	ReviewText      string          `json:"review_text"`
	ReceiptData     *ReceiptData    `json:"receipt_data"`
	BusinessDetails BusinessDetails `json:"business_details" binding:"required"`
	UserReputation  int             `json:"user_reputation" binding:"gte=0"`
}

// DetectFraudResponse is the API response for fraud detection.
// Field names are part of the platform contract; do not rename.
type DetectFraudResponse struct {
	IsFraudulent bool     `json:"isFraudulent"`
	Confidence   float64  `json:"confidence"`
	FraudReasons []string `json:"fraudReasons"`
	RiskScore    int      `json:"riskScore"`
}

// Sentiment is the positive/negative/neutral split of a review text,
// each expressed as a fraction of the total word count
type Sentiment struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}
