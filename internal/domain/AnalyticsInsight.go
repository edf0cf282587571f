package domain

import "time"

type InsightType string

const (
	InsightPerformance  InsightType = "performance"
	InsightOptimization InsightType = "optimization"
	InsightTrend        InsightType = "trend"
)

type InsightImpact string

const (
	ImpactHigh   InsightImpact = "high"
	ImpactMedium InsightImpact = "medium"
	ImpactLow    InsightImpact = "low"
)

// Insight é uma recomendação gerada por regras a partir dos registros
type Insight struct {
	ID          string        `json:"id"`
	Type        InsightType   `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Impact      InsightImpact `json:"impact"`
	Confidence  int           `json:"confidence"`
	Actionable  bool          `json:"actionable"`
	Metrics     []string      `json:"metrics"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
