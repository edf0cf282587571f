package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/cache"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/pkg/metrics"
	"github.com/vfg2006/campaign-analytics-api/pkg/ratelimit"
)

// RecordSyncService copia periodicamente os registros da fonte upstream para o
// banco, aplica a retenção e invalida o cache de dashboards
type RecordSyncService struct {
	scheduler *gocron.Scheduler
	config    config.RecordSync
	source    analyzing.RecordSource
	repo      repository.AnalyticsRecordRepository
	cache     cache.DashboardCache
	metrics   *metrics.Metrics
	debouncer *ratelimit.Debouncer
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRecords     int
	lastSyncError       string
}

func NewRecordSyncService(
	cfg config.RecordSync,
	source analyzing.RecordSource,
	repo repository.AnalyticsRecordRepository,
	dashboardCache cache.DashboardCache,
	m *metrics.Metrics,
) *RecordSyncService {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = 1
	}
	if cfg.MaxConcurrentJobs <= 0 {
		cfg.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       cfg.CronSchedule,
		"lookback_days":       cfg.LookbackDays,
		"max_concurrent_jobs": cfg.MaxConcurrentJobs,
		"retention_days":      cfg.RetentionDays,
		"sync_enabled":        cfg.Enabled,
	}).Info("record sync: configuração carregada")

	return &RecordSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		source:    source,
		repo:      repo,
		cache:     dashboardCache,
		metrics:   m,
		debouncer: ratelimit.NewDebouncer(cfg.TriggerDebounce),
		now:       time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *RecordSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("record sync: desabilitado por configuração")
		return nil
	}

	if _, err := cron.ParseStandard(s.config.CronSchedule); err != nil {
		return fmt.Errorf("invalid record sync cron %q: %w", s.config.CronSchedule, err)
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Sync(ctx); err != nil {
			logrus.WithError(err).Error("record sync: falha na execução agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling record sync: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("record sync: agendador iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("record sync: parando agendador")
		s.debouncer.Stop()
		s.scheduler.Stop()
	}()

	return nil
}

// ErrSyncRunning indica que já existe uma sincronização em andamento
var ErrSyncRunning = errors.New("record sync already running")

// Sync busca os últimos LookbackDays dias (a partir de ontem), salva cada
// registro, remove os registros fora da retenção e invalida o cache
func (s *RecordSyncService) Sync(ctx context.Context) (err error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("record sync: sincronização já em andamento, ignorando")
		return ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	saved := 0

	defer func() {
		s.metrics.IncRecordSync(err, saved)

		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncRecords = saved
		s.lastSyncError = ""
		if err != nil {
			s.lastSyncError = err.Error()
		}
		s.syncMutex.Unlock()
	}()

	days := s.daysToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       len(days),
		"start_date": days[len(days)-1].Format(time.DateOnly),
		"end_date":   days[0].Format(time.DateOnly),
	}).Info("record sync: período da sincronização")

	saved, err = s.processDays(ctx, days)
	if err != nil {
		return err
	}

	if s.config.RetentionDays > 0 {
		deleted, err := s.repo.DeleteOlderThan(ctx, s.config.RetentionDays)
		if err != nil {
			return fmt.Errorf("error applying retention: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"retention_days": s.config.RetentionDays,
			"deleted":        deleted,
		}).Info("record sync: retenção aplicada")
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			logrus.WithError(err).Warn("record sync: erro ao invalidar cache de dashboards")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"records":  saved,
	}).Info("record sync: sincronização concluída")

	return nil
}

// daysToProcess retorna os dias a processar, de ontem para trás
func (s *RecordSyncService) daysToProcess() []time.Time {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := make([]time.Time, s.config.LookbackDays)
	for i := range days {
		days[i] = today.AddDate(0, 0, -i-1)
	}
	return days
}

// processDays processa os dias com no máximo MaxConcurrentJobs em paralelo.
// Uma falha em um dia não interrompe os demais; a primeira é retornada.
func (s *RecordSyncService) processDays(ctx context.Context, days []time.Time) (int, error) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		total    int
		firstErr error
	)

	for _, day := range days {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(day time.Time) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			saved, err := s.processDay(ctx, day)

			mu.Lock()
			defer mu.Unlock()
			total += saved
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}(day)
	}

	wg.Wait()
	return total, firstErr
}

func (s *RecordSyncService) processDay(ctx context.Context, day time.Time) (int, error) {
	timeRange := domain.TimeRange{
		Start:       day,
		End:         day.Add(24*time.Hour - time.Nanosecond),
		Granularity: domain.GranularityDay,
	}

	records, err := s.source.GetRecords(ctx, timeRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  day.Format(time.DateOnly),
			"error": err.Error(),
		}).Error("record sync: erro ao buscar registros na fonte")
		return 0, fmt.Errorf("error fetching records for %s: %w", day.Format(time.DateOnly), err)
	}

	saved := 0
	for i := range records {
		if err := s.repo.SaveOrUpdate(ctx, &records[i]); err != nil {
			logrus.WithFields(logrus.Fields{
				"date":      day.Format(time.DateOnly),
				"record_id": records[i].ID,
				"error":     err.Error(),
			}).Error("record sync: erro ao salvar registro")
			return saved, fmt.Errorf("error saving record for %s: %w", day.Format(time.DateOnly), err)
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"date":    day.Format(time.DateOnly),
		"records": saved,
	}).Debug("record sync: dia sincronizado")

	return saved, nil
}

// TriggerManualSync agenda uma sincronização. Chamadas em sequência dentro do
// intervalo de debounce resultam em uma única execução.
func (s *RecordSyncService) TriggerManualSync() {
	logrus.Info("record sync: sincronização manual solicitada")
	s.debouncer.Trigger(func() {
		err := s.Sync(context.Background())
		switch {
		case errors.Is(err, ErrSyncRunning):
			logrus.Info("record sync: sincronização manual ignorada, já existe uma em andamento")
		case err != nil:
			logrus.WithError(err).Error("record sync: falha na sincronização manual")
		}
	})
}

// GetStatus retorna o status atual do agendador
func (s *RecordSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_records":      s.lastSyncRecords,
		"last_sync_error":        s.lastSyncError,
	}
}
