package meta

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentAccounts limita as contas consultadas ao mesmo tempo
const maxConcurrentAccounts = 5

// publisherPlatforms mapeia publisher_platform para as plataformas do domínio.
// Messenger e Audience Network são inventário do Facebook.
var publisherPlatforms = map[string]domain.Platform{
	"facebook":         domain.PlatformFacebook,
	"messenger":        domain.PlatformFacebook,
	"audience_network": domain.PlatformFacebook,
	"instagram":        domain.PlatformInstagram,
}

// MetaIntegrator é a fonte de registros sobre a Marketing API do Meta
type MetaIntegrator struct {
	cfg    config.Meta
	Client metaclient.Client
}

func New(cfg config.Meta, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetRecords busca os insights diários de todas as contas configuradas
func (s *MetaIntegrator) GetRecords(ctx context.Context, timeRange domain.TimeRange) ([]domain.AnalyticsRecord, error) {
	var (
		mu      sync.Mutex
		records = make([]domain.AnalyticsRecord, 0)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAccounts)

	for _, accountID := range s.cfg.AdAccountIDs {
		g.Go(func() error {
			insights, err := s.Client.GetDailyInsights(gctx, accountID, timeRange.Start, timeRange.End)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"error":      err.Error(),
				}).Error("meta: falha ao buscar insights da conta")
				return err
			}

			accountRecords := make([]domain.AnalyticsRecord, 0, len(insights))
			for i := range insights {
				record, ok := FactoryRecord(&insights[i])
				if !ok {
					continue
				}
				accountRecords = append(accountRecords, record)
			}

			mu.Lock()
			records = append(records, accountRecords...)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// FactoryRecord converte uma linha de insight em registro. Linhas de
// plataformas sem correspondência ou sem data válida são descartadas.
func FactoryRecord(insight *metadomain.Insight) (domain.AnalyticsRecord, bool) {
	platform, ok := publisherPlatforms[insight.PublisherPlatform]
	if !ok {
		logrus.WithField("publisher_platform", insight.PublisherPlatform).Debug("meta: plataforma ignorada")
		return domain.AnalyticsRecord{}, false
	}

	if _, err := time.Parse(time.DateOnly, insight.DateStart); err != nil {
		logrus.WithField("date_start", insight.DateStart).Warn("meta: linha com data inválida ignorada")
		return domain.AnalyticsRecord{}, false
	}

	metrics := domain.MetricsBundle{}
	setNumber(metrics, domain.MetricImpressions, insight.Impressions)
	setNumber(metrics, domain.MetricReach, insight.Reach)
	setNumber(metrics, domain.MetricClicks, insight.Clicks)
	setNumber(metrics, domain.MetricSpend, insight.Spend)
	setNumber(metrics, domain.MetricCTR, insight.CTR)
	setNumber(metrics, domain.MetricCPC, insight.CPC)
	setNumber(metrics, domain.MetricCPM, insight.CPM)

	actions := actionsByType(insight.Actions)

	var conversions float64
	hasConversions := false
	for actionType, value := range actions {
		if metadomain.ConversionActionTypes[actionType] {
			conversions += value
			hasConversions = true
		}
	}
	if hasConversions {
		metrics[domain.MetricConversions] = conversions
	}

	if v, ok := actions[metadomain.ActionReaction]; ok {
		metrics[domain.MetricLikes] = v
	}
	if v, ok := actions[metadomain.ActionComment]; ok {
		metrics[domain.MetricComments] = v
	}
	if v, ok := actions[metadomain.ActionShare]; ok {
		metrics[domain.MetricShares] = v
	}
	if v, ok := actions[metadomain.ActionSave]; ok {
		metrics[domain.MetricSaves] = v
	}

	// engajamento como taxa sobre as impressões
	if v, ok := actions[metadomain.ActionPostEngagement]; ok && metrics.Get(domain.MetricImpressions) > 0 {
		metrics[domain.MetricEngagement] = utils.RoundWithTwoDecimalPlace(v / metrics.Get(domain.MetricImpressions) * 100)
	}

	values := actionsByType(insight.ActionValues)
	for _, actionType := range metadomain.RevenueActionTypes {
		if v, ok := values[actionType]; ok {
			metrics[domain.MetricRevenue] = v
			break
		}
	}

	for _, ratio := range []string{domain.MetricCTR, domain.MetricCPC, domain.MetricCPM} {
		if v, ok := metrics[ratio]; ok {
			metrics[ratio] = utils.RoundWithTwoDecimalPlace(v)
		}
	}
	domain.DeriveRatios(metrics)

	return domain.AnalyticsRecord{
		ID:      fmt.Sprintf("meta-%s-%s-%s", insight.CampaignID, insight.DateStart, platform),
		Metrics: metrics,
		Dimensions: domain.DimensionTag{
			Platform:     platform,
			Date:         insight.DateStart,
			CampaignID:   insight.CampaignID,
			CampaignName: insight.CampaignName,
		},
	}, true
}

func actionsByType(actions []metadomain.Action) map[string]float64 {
	values := make(map[string]float64, len(actions))
	for _, action := range actions {
		v, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("meta: erro ao converter valor da ação")
			continue
		}
		values[action.ActionType] += v
	}
	return values
}

// setNumber grava a métrica apenas quando a API informou um valor numérico
func setNumber(metrics domain.MetricsBundle, name, raw string) {
	if raw == "" {
		return
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"metric": name,
			"value":  raw,
			"error":  err.Error(),
		}).Warn("meta: erro ao converter métrica")
		return
	}
	metrics[name] = v
}
