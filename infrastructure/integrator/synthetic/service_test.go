package synthetic

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return "rec-" + strconv.Itoa(n), nil
	}
}

func TestGenerator_GetRecords(t *testing.T) {
	timeRange := domain.TimeRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 3, 23, 59, 59, 0, time.UTC),
	}

	t.Run("um registro por dia e plataforma", func(t *testing.T) {
		g := New(42)
		g.newID = sequentialIDs()

		records, err := g.GetRecords(context.Background(), timeRange)

		require.NoError(t, err)
		require.Len(t, records, 3*len(domain.Platforms))
		assert.Equal(t, "rec-1", records[0].ID)
		assert.Equal(t, "2025-03-01", records[0].Dimensions.Date)
		assert.Equal(t, "2025-03-03", records[len(records)-1].Dimensions.Date)

		for _, r := range records {
			assert.True(t, r.Dimensions.Platform.IsValid())
			assert.NotEmpty(t, r.Dimensions.CampaignID)
			assert.NotEmpty(t, r.Dimensions.ContentID)

			m := r.Metrics
			assert.GreaterOrEqual(t, m[domain.MetricImpressions], 1000.0)
			assert.LessOrEqual(t, m[domain.MetricClicks], m[domain.MetricImpressions])
			assert.LessOrEqual(t, m[domain.MetricReach], m[domain.MetricImpressions])
			assert.True(t, m.Has(domain.MetricCTR))
			assert.True(t, m.Has(domain.MetricCPM))
			assert.True(t, m.Has(domain.MetricEngagement))
		}
	})

	t.Run("mesma semente gera as mesmas métricas por dia", func(t *testing.T) {
		g := New(7).WithPlatforms(domain.PlatformFacebook)

		full, err := g.GetRecords(context.Background(), timeRange)
		require.NoError(t, err)

		lastDay := domain.TimeRange{Start: timeRange.End.Truncate(24 * time.Hour), End: timeRange.End}
		partial, err := g.GetRecords(context.Background(), lastDay)
		require.NoError(t, err)

		require.Len(t, full, 3)
		require.Len(t, partial, 1)
		assert.Equal(t, full[2].Metrics, partial[0].Metrics)
		assert.Equal(t, full[2].Dimensions, partial[0].Dimensions)
	})

	t.Run("sementes diferentes geram métricas diferentes", func(t *testing.T) {
		a, err := New(1).WithPlatforms(domain.PlatformTwitter).GetRecords(context.Background(), timeRange)
		require.NoError(t, err)
		b, err := New(2).WithPlatforms(domain.PlatformTwitter).GetRecords(context.Background(), timeRange)
		require.NoError(t, err)

		assert.NotEqual(t, a[0].Metrics, b[0].Metrics)
	})

	t.Run("contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		records, err := New(1).GetRecords(ctx, timeRange)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, records)
	})
}
