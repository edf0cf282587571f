package domain

import "time"

// CampaignAnalytics agrega os registros de uma campanha
type CampaignAnalytics struct {
	CampaignID string        `json:"campaignId"`
	Name       string        `json:"name"`
	Status     string        `json:"status,omitempty"`
	Platforms  []Platform    `json:"platforms,omitempty"`
	Budget     float64       `json:"budget,omitempty"`
	Spent      float64       `json:"spent,omitempty"`
	Metrics    MetricsBundle `json:"metrics"`
	TimeRange  *TimeRange    `json:"timeRange,omitempty"`
}

// ContentAnalytics agrega os registros de um conteúdo publicado
type ContentAnalytics struct {
	ContentID   string        `json:"contentId"`
	Title       string        `json:"title"`
	Platform    Platform      `json:"platform,omitempty"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	Metrics     MetricsBundle `json:"metrics"`
	TimeRange   *TimeRange    `json:"timeRange,omitempty"`
}

// TeamAnalytics resume a produtividade de uma equipe de conteúdo
type TeamAnalytics struct {
	TeamID           string        `json:"teamId"`
	Name             string        `json:"name"`
	Members          int           `json:"members"`
	ContentPublished int           `json:"contentPublished"`
	ApprovalRate     float64       `json:"approvalRate"`
	AvgApprovalHours float64       `json:"avgApprovalHours"`
	Metrics          MetricsBundle `json:"metrics,omitempty"`
}
