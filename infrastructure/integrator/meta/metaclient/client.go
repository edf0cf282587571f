package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrTokenExpired = errors.New("meta access token expired or invalid")
	ErrRateLimited  = errors.New("meta api rate limit reached")
)

// maxPages limita a paginação de uma única consulta
const maxPages = 50

type Client interface {
	// GetDailyInsights retorna os insights diários por campanha e plataforma da conta
	GetDailyInsights(ctx context.Context, accountID string, since, until time.Time) ([]metadomain.Insight, error)
}

type MetaClient struct {
	cfg        config.Meta
	httpClient *http.Client
	tokens     *TokenManager
}

// NewClient cria o cliente da Graph API. Sem TokenManager o token da
// configuração é usado sem renovação.
func NewClient(cfg config.Meta, tokens *TokenManager) *MetaClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	if tokens == nil {
		tokens = NewTokenManager(cfg)
	}

	return &MetaClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// GetDailyInsights busca os insights e, quando o token expirou e pode ser
// renovado, renova uma vez e repete a consulta
func (c *MetaClient) GetDailyInsights(ctx context.Context, accountID string, since, until time.Time) ([]metadomain.Insight, error) {
	insights, err := c.dailyInsights(ctx, accountID, since, until)
	if err == nil || !errors.Is(err, ErrTokenExpired) || !c.tokens.CanRefresh() {
		return insights, err
	}

	logrus.WithField("account_id", accountID).Warn("meta: token expirado, renovando antes de repetir a consulta")
	if refreshErr := c.tokens.Refresh(ctx); refreshErr != nil {
		return nil, errors.Wrapf(err, "renovação do token falhou: %v", refreshErr)
	}

	return c.dailyInsights(ctx, accountID, since, until)
}

func (c *MetaClient) dailyInsights(ctx context.Context, accountID string, since, until time.Time) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("level", "campaign")
	params.Add("time_increment", "1")
	params.Add("breakdowns", "publisher_platform")
	params.Add("fields", "account_id,campaign_id,campaign_name,impressions,reach,clicks,spend,ctr,cpc,cpm,actions,action_values")
	params.Add("time_range", `{"since":"`+since.Format(time.DateOnly)+`","until":"`+until.Format(time.DateOnly)+`"}`)
	params.Add("limit", "500")
	params.Add("access_token", c.tokens.Token())

	next := strings.TrimRight(c.cfg.URL, "/") + "/act_" + strings.TrimPrefix(accountID, "act_") + "/insights?" + params.Encode()

	insights := make([]metadomain.Insight, 0)
	for page := 0; next != "" && page < maxPages; page++ {
		var response metadomain.InsightsResponse
		if err := c.get(ctx, next, &response); err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar insights da conta %s", accountID)
		}

		insights = append(insights, response.Data...)
		next = response.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"since":      since.Format(time.DateOnly),
		"until":      until.Format(time.DateOnly),
		"rows":       len(insights),
	}).Debug("meta: insights recebidos")

	return insights, nil
}

func (c *MetaClient) get(ctx context.Context, requestURL string, out any) error {
	return getJSON(ctx, c.httpClient, requestURL, out)
}

func parseError(status int, body []byte) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Message == "" {
		return errors.Errorf("meta api status %d: %s", status, strings.TrimSpace(string(body)))
	}

	switch {
	case errorResp.IsTokenExpired():
		return errors.Wrap(ErrTokenExpired, errorResp.String())
	case errorResp.IsRateLimited():
		return errors.Wrap(ErrRateLimited, errorResp.String())
	default:
		return errors.New(errorResp.String())
	}
}
