package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/synthetic"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

const defaultSeedDays = 90

var schema = []string{
	`CREATE TABLE IF NOT EXISTS analytics_records (
		id            VARCHAR(32)  PRIMARY KEY,
		date          DATE         NOT NULL,
		platform      VARCHAR(32)  NOT NULL,
		campaign_id   VARCHAR(128) NOT NULL DEFAULT '',
		campaign_name VARCHAR(255) NOT NULL DEFAULT '',
		content_id    VARCHAR(128) NOT NULL DEFAULT '',
		content_title VARCHAR(255) NOT NULL DEFAULT '',
		metrics       JSONB        NOT NULL DEFAULT '{}'::jsonb,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		CONSTRAINT analytics_records_dimensions_key UNIQUE (date, platform, campaign_id, content_id)
	)`,
	`CREATE INDEX IF NOT EXISTS analytics_records_date_idx ON analytics_records (date)`,
	`CREATE INDEX IF NOT EXISTS analytics_records_campaign_idx ON analytics_records (campaign_id)`,
}

func createSchema(ctx context.Context, conn *postgres.Connection) error {
	logrus.Info("migration: criando schema")

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// seed grava registros sintéticos dos últimos dias, até ontem
func seed(ctx context.Context, conn *postgres.Connection, days int, seedValue int64) {
	repo := repository.NewAnalyticsRecordRepository(conn)

	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	timeRange := domain.TimeRange{
		Start:       yesterday.AddDate(0, 0, -(days - 1)),
		End:         yesterday.Add(24*time.Hour - time.Nanosecond),
		Granularity: domain.GranularityDay,
	}

	records, err := synthetic.New(seedValue).GetRecords(ctx, timeRange)
	if err != nil {
		logrus.WithError(err).Fatal("migration: erro ao gerar registros sintéticos")
	}

	logrus.WithFields(logrus.Fields{
		"days":    days,
		"records": len(records),
	}).Info("migration: inserindo registros sintéticos")

	startTime := time.Now()
	successCount := 0
	errorCount := 0

	for i := range records {
		if err := repo.SaveOrUpdate(ctx, &records[i]); err != nil {
			logrus.WithError(err).WithField("date", records[i].Dimensions.Date).Warn("migration: erro ao inserir registro")
			errorCount++
			continue
		}
		successCount++

		if i > 0 && i%100 == 0 {
			logrus.Infof("migration: progresso %d/%d registros", i+1, len(records))
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"success":  successCount,
		"errors":   errorCount,
	}).Info("migration: carga inicial concluída")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	viper.SetDefault("SEED_DAYS", defaultSeedDays)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("migration: erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("migration: erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("migration: erro ao criar schema")
	}

	if days := viper.GetInt("SEED_DAYS"); days > 0 {
		seedValue := cfg.DataSource.Seed
		if seedValue == 0 {
			seedValue = time.Now().UnixNano()
		}
		seed(ctx, conn, days, seedValue)
	}
}
