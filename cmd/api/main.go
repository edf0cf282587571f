package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/cache"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/synthetic"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/api"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/scheduler"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/billing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
	"github.com/vfg2006/campaign-analytics-api/pkg/metrics"
	"github.com/vfg2006/campaign-analytics-api/pkg/ratelimit"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !log.Setup(cfg.App.LogLevel) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	source, tokens := recordSource(ctx, cfg)
	if tokens != nil {
		defer tokens.Stop()
	}
	dashboardCache := newDashboardCache(ctx, cfg)

	analyzer := analyzing.NewService(source, ratelimit.NewThrottler(cfg.Realtime.ThrottleInterval, cfg.Realtime.CacheSize)).
		WithDashboardCache(dashboardCache).
		WithMetrics(appMetrics)

	services := api.Services{
		Analyzer:  analyzer,
		Exporter:  exporting.NewService().WithMetrics(appMetrics),
		Processor: billing.NewProcessor(cfg.Billing.SuccessRate, cfg.Billing.ProcessingDelay).WithMetrics(appMetrics),
		Metrics:   appMetrics,
	}

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		recordRepo := repository.NewAnalyticsRecordRepository(pgConn)
		analyzer.WithRecordStore(recordRepo)
		services.Pinger = pgConn

		if cfg.RecordSync.Enabled {
			recordSyncService := scheduler.NewRecordSyncService(cfg.RecordSync, source, recordRepo, dashboardCache, appMetrics)
			if err := recordSyncService.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de registros")
			} else {
				logrus.Info("Agendador de sincronização de registros iniciado com sucesso")
				services.RecordSync = recordSyncService
			}
		}
	}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite que o .env ao lado do binário em desenvolvimento seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// recordSource escolhe a fonte upstream de registros. Com o Meta, o
// gerenciador de token volta junto para ser parado no encerramento.
func recordSource(ctx context.Context, cfg *config.Config) (analyzing.RecordSource, *metaclient.TokenManager) {
	if cfg.DataSource.Kind == config.DataSourceMeta {
		logrus.WithField("accounts", len(cfg.Meta.AdAccountIDs)).Info("Usando a Marketing API do Meta como fonte de registros")

		tokens := metaclient.NewTokenManager(cfg.Meta)
		if err := tokens.Init(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao inicializar o token do Meta, seguindo com o token configurado")
		}
		tokens.StartAutoRefresh(ctx)

		return meta.New(cfg.Meta, metaclient.NewClient(cfg.Meta, tokens)), tokens
	}

	seed := cfg.DataSource.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logrus.WithField("seed", seed).Info("Usando dados sintéticos como fonte de registros")
	return synthetic.New(seed), nil
}

// newDashboardCache usa Redis quando habilitado e o LRU em memória caso contrário
func newDashboardCache(ctx context.Context, cfg *config.Config) cache.DashboardCache {
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisDashboardCache(ctx, cfg.Redis, cfg.DashboardCache.TTL)
		if err == nil {
			logrus.Info("Cache de dashboards no Redis habilitado")
			return redisCache
		}
		logrus.WithError(err).Warn("Redis indisponível, usando cache de dashboards em memória")
	}

	return cache.NewMemoryDashboardCache(cfg.DashboardCache.Size, cfg.DashboardCache.TTL)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
