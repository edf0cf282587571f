package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

//go:generate mockgen -source=analytics_record.go -destination=mocks/analytics_record.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	analyticsRecordsTable = "analytics_records ar"

	analyticsRecordColumns = "ar.id, ar.date, ar.platform, ar.campaign_id, ar.campaign_name, ar.content_id, ar.content_title, ar.metrics, ar.created_at, ar.updated_at"
)

// AnalyticsRecordRepository guarda os registros diários vindos da fonte upstream
type AnalyticsRecordRepository interface {
	GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.AnalyticsRecord, error)
	SaveOrUpdate(ctx context.Context, record *domain.AnalyticsRecord) error
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type analyticsRecordRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRecordRepository(conn *postgres.Connection) AnalyticsRecordRepository {
	return &analyticsRecordRepository{
		conn: conn,
	}
}

func (r *analyticsRecordRepository) GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.AnalyticsRecord, error) {
	query, args, err := squirrel.
		Select(analyticsRecordColumns).
		From(analyticsRecordsTable).
		Where(squirrel.GtOrEq{"ar.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ar.date": endDate.Format(time.DateOnly)}).
		OrderBy("ar.date ASC", "ar.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AnalyticsRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de analytics: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *analyticsRecordRepository) SaveOrUpdate(ctx context.Context, record *domain.AnalyticsRecord) error {
	date, err := record.Dimensions.ParsedDate()
	if err != nil {
		return fmt.Errorf("registro sem data válida: %w", err)
	}

	if record.ID == "" {
		record.ID, err = utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do registro: %w", err)
		}
	}

	metricsJSON, err := json.Marshal(record.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("analytics_records").
		Columns("id", "date", "platform", "campaign_id", "campaign_name", "content_id", "content_title", "metrics").
		Values(
			record.ID,
			date.Format(time.DateOnly),
			string(record.Dimensions.Platform),
			record.Dimensions.CampaignID,
			record.Dimensions.CampaignName,
			record.Dimensions.ContentID,
			record.Dimensions.ContentTitle,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (date, platform, campaign_id, content_id) DO UPDATE SET
				campaign_name = EXCLUDED.campaign_name,
				content_title = EXCLUDED.content_title,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analyticsRecordRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("analytics_records").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *analyticsRecordRepository) scanRecord(rows *sql.Rows) (*domain.AnalyticsRecord, error) {
	record := &domain.AnalyticsRecord{}
	var (
		date        time.Time
		platform    string
		metricsJSON []byte
	)

	err := rows.Scan(
		&record.ID,
		&date,
		&platform,
		&record.Dimensions.CampaignID,
		&record.Dimensions.CampaignName,
		&record.Dimensions.ContentID,
		&record.Dimensions.ContentTitle,
		&metricsJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Dimensions.Date = date.Format(time.DateOnly)
	record.Dimensions.Platform = domain.Platform(platform)

	record.Metrics = domain.MetricsBundle{}
	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &record.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
	}

	return record, nil
}
