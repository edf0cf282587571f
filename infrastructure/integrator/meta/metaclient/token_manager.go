package metaclient

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
)

// ErrTokenNotRenewable indica que não há app id/secret para trocar o token
var ErrTokenNotRenewable = errors.New("meta token não pode ser renovado sem META_APP_ID e META_APP_SECRET")

// defaultRefreshInterval renova antes de completar 24h
const defaultRefreshInterval = 23 * time.Hour

// retryInterval é usado depois de uma renovação periódica que falhou
const retryInterval = time.Hour

// TokenManager mantém o token de acesso do Meta usado pelo MetaClient.
// Sem app id/secret o token de configuração é usado como está.
type TokenManager struct {
	cfg        config.Meta
	graphURL   string
	httpClient *http.Client
	now        func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	// refreshMu serializa trocas de token concorrentes
	refreshMu sync.Mutex

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

func NewTokenManager(cfg config.Meta) *TokenManager {
	token := cfg.LongLivedToken
	if token == "" {
		token = cfg.AccessToken
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	endpoint := strings.TrimRight(cfg.URL, "/")
	if endpoint == "" {
		endpoint = graphURL(cfg.BaseURL, cfg.Version)
	}

	return &TokenManager{
		cfg:        cfg,
		graphURL:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
		token:      token,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Token retorna o token atual
func (tm *TokenManager) Token() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.token
}

// ExpiresAt retorna a expiração conhecida (zero quando desconhecida)
func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

// CanRefresh indica se há credenciais do app para trocar o token
func (tm *TokenManager) CanRefresh() bool {
	return tm.cfg.AppID != "" && tm.cfg.AppSecret != ""
}

// Init prepara o token na subida: troca o token curto por um de longa duração,
// ou valida o token longo configurado e renova quando inválido ou perto de expirar
func (tm *TokenManager) Init(ctx context.Context) error {
	if !tm.CanRefresh() {
		logrus.Info("meta: usando token de acesso estático da configuração")
		return nil
	}

	if tm.cfg.LongLivedToken == "" {
		logrus.Info("meta: token de longa duração não encontrado, iniciando troca")
		return tm.Refresh(ctx)
	}

	info, err := debugToken(ctx, tm.httpClient, tm.graphURL, tm.cfg.AppID, tm.cfg.AppSecret, tm.Token())
	if err != nil {
		return errors.Wrap(err, "erro ao validar token de longa duração")
	}

	if !info.IsValid {
		logrus.Warn("meta: token de longa duração inválido, tentando renovar")
		return tm.Refresh(ctx)
	}

	if info.ExpiresAt > 0 {
		tm.mu.Lock()
		tm.expiresAt = time.Unix(info.ExpiresAt, 0).Add(-24 * time.Hour)
		tm.mu.Unlock()
	}

	return tm.EnsureValid(ctx)
}

// Refresh troca o token atual por um novo de longa duração
func (tm *TokenManager) Refresh(ctx context.Context) error {
	if !tm.CanRefresh() {
		return ErrTokenNotRenewable
	}

	tm.refreshMu.Lock()
	defer tm.refreshMu.Unlock()

	current := tm.Token()
	resp, err := exchangeToken(ctx, tm.httpClient, tm.graphURL, tm.cfg.AppID, tm.cfg.AppSecret, current)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			logrus.Error("meta: token expirou e não pode ser renovado automaticamente, é necessário reautorizar o app")
		}
		return err
	}

	tm.mu.Lock()
	tm.token = resp.AccessToken
	tm.expiresAt = tokenExpiration(tm.now(), resp.ExpiresIn)
	tm.mu.Unlock()

	entry := logrus.WithField("expires_in", formatDuration(resp.ExpiresIn))
	if resp.AccessToken == current {
		entry.Warn("meta: token renovado, mas não mudou")
	} else {
		entry.Info("meta: token de longa duração atualizado")
	}

	return nil
}

// EnsureValid renova quando faltam menos de 24h para a expiração conhecida
func (tm *TokenManager) EnsureValid(ctx context.Context) error {
	expiresAt := tm.ExpiresAt()
	if expiresAt.IsZero() || !tm.CanRefresh() {
		return nil
	}

	if expiresAt.Sub(tm.now()) < 24*time.Hour {
		logrus.Info("meta: token expira em menos de 24 horas, renovando")
		return tm.Refresh(ctx)
	}

	return nil
}

// StartAutoRefresh renova o token periodicamente até Stop ou o fim do ctx.
// Falhas são tentadas de novo em uma hora.
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	tm.startOnce.Do(func() { tm.startAutoRefresh(ctx) })
}

func (tm *TokenManager) startAutoRefresh(ctx context.Context) {
	if !tm.CanRefresh() {
		close(tm.done)
		return
	}

	interval := tm.cfg.TokenRefreshInterval
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	go func() {
		defer close(tm.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := tm.Refresh(ctx); err != nil {
					logrus.WithError(err).Error("meta: erro na renovação periódica do token")
					ticker.Reset(retryInterval)
					continue
				}
				ticker.Reset(interval)
			case <-tm.stop:
				logrus.Info("meta: encerrando renovação periódica do token")
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop encerra a renovação periódica e espera a goroutine terminar.
// Sem StartAutoRefresh anterior não há o que esperar.
func (tm *TokenManager) Stop() {
	tm.stopOnce.Do(func() { close(tm.stop) })
	tm.startOnce.Do(func() { close(tm.done) })
	<-tm.done
}
