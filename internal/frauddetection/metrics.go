package frauddetection

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reviewsScoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fraud_reviews_scored_total",
			Help: "Total number of reviews scored, by verdict",
		},
		[]string{"verdict"},
	)

	riskScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fraud_risk_score",
			Help:    "Distribution of computed risk scores",
			Buckets: prometheus.LinearBuckets(0, 20, 11),
		},
	)
)
