// Package synthetic gera registros de analytics aleatórios, usados em
// desenvolvimento e quando nenhuma conta de anúncios está configurada.
package synthetic

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

type catalogEntry struct {
	ID    string
	Name  string
	Title string
}

var campaigns = []catalogEntry{
	{ID: "cmp-spring-sale", Name: "Spring Sale"},
	{ID: "cmp-brand-awareness", Name: "Brand Awareness"},
	{ID: "cmp-product-launch", Name: "Product Launch"},
}

var contents = []catalogEntry{
	{ID: "cnt-launch-video", Title: "Launch video"},
	{ID: "cnt-carousel", Title: "Product carousel"},
	{ID: "cnt-testimonial", Title: "Customer testimonial"},
	{ID: "cnt-behind-scenes", Title: "Behind the scenes"},
}

// Generator gera um registro por dia e plataforma. A mesma semente produz
// as mesmas métricas para o mesmo dia, independente do intervalo pedido.
type Generator struct {
	seed      uint64
	platforms []domain.Platform
	newID     func() (string, error)
}

func New(seed int64) *Generator {
	return &Generator{
		seed:      uint64(seed),
		platforms: domain.Platforms,
		newID:     utils.GenerateID,
	}
}

// WithPlatforms restringe as plataformas geradas
func (g *Generator) WithPlatforms(platforms ...domain.Platform) *Generator {
	g.platforms = platforms
	return g
}

func (g *Generator) GetRecords(ctx context.Context, timeRange domain.TimeRange) ([]domain.AnalyticsRecord, error) {
	days := timeRange.Days()
	records := make([]domain.AnalyticsRecord, 0, len(days)*len(g.platforms))

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		random := rand.New(rand.NewPCG(g.seed, uint64(day.Unix())))
		for _, platform := range g.platforms {
			record, err := g.record(random, day, platform)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}

	logrus.WithFields(logrus.Fields{
		"start":   timeRange.Start.Format(time.DateOnly),
		"end":     timeRange.End.Format(time.DateOnly),
		"records": len(records),
	}).Debug("synthetic: registros gerados")

	return records, nil
}

func (g *Generator) record(random *rand.Rand, day time.Time, platform domain.Platform) (domain.AnalyticsRecord, error) {
	id, err := g.newID()
	if err != nil {
		return domain.AnalyticsRecord{}, fmt.Errorf("error generating record id: %w", err)
	}

	campaign := campaigns[random.IntN(len(campaigns))]
	content := contents[random.IntN(len(contents))]

	impressions := float64(1000 + random.IntN(9000))
	reach := float64(int(impressions * between(random, 0.6, 0.9)))
	clicks := float64(int(impressions * between(random, 0.005, 0.05)))
	conversions := float64(int(clicks * between(random, 0.01, 0.1)))
	likes := float64(random.IntN(500))
	comments := float64(random.IntN(100))
	shares := float64(random.IntN(50))
	saves := float64(random.IntN(80))
	spend := utils.RoundWithTwoDecimalPlace(between(random, 20, 500))
	revenue := utils.RoundWithTwoDecimalPlace(conversions * between(random, 10, 80))

	metrics := domain.MetricsBundle{
		domain.MetricImpressions: impressions,
		domain.MetricReach:       reach,
		domain.MetricClicks:      clicks,
		domain.MetricConversions: conversions,
		domain.MetricLikes:       likes,
		domain.MetricComments:    comments,
		domain.MetricShares:      shares,
		domain.MetricSaves:       saves,
		domain.MetricSpend:       spend,
		domain.MetricRevenue:     revenue,
		domain.MetricEngagement:  utils.RoundWithTwoDecimalPlace((likes + comments + shares + saves) / impressions * 100),
	}
	domain.DeriveRatios(metrics)

	return domain.AnalyticsRecord{
		ID:      id,
		Metrics: metrics,
		Dimensions: domain.DimensionTag{
			Platform:     platform,
			Date:         day.Format(time.DateOnly),
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			ContentID:    content.ID,
			ContentTitle: content.Title,
		},
	}, nil
}

func between(random *rand.Rand, lo, hi float64) float64 {
	return lo + random.Float64()*(hi-lo)
}
