package domain

// ChangeType classifica a direção de uma variação
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeStable   ChangeType = "stable"
)

// TrendResult compara a primeira e a segunda metade de uma série
type TrendResult struct {
	Metric     string     `json:"metric"`
	Value      float64    `json:"value"`
	Change     float64    `json:"change"`
	ChangeType ChangeType `json:"changeType"`
	Period     string     `json:"period"`
}

// ComparisonResult compara o período atual com o anterior
type ComparisonResult struct {
	Metric     string     `json:"metric"`
	Current    float64    `json:"current"`
	Previous   float64    `json:"previous"`
	Change     float64    `json:"change"`
	ChangeType ChangeType `json:"changeType"`
}
