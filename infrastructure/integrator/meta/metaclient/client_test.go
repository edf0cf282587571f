package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
)

func newTestClient(serverURL string) *MetaClient {
	return NewClient(config.Meta{
		URL:         serverURL + "/v22.0",
		AccessToken: "token-123",
		Timeout:     time.Second,
	}, nil)
}

func TestMetaClient_GetDailyInsights(t *testing.T) {
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("segue a paginação e envia os parâmetros esperados", func(t *testing.T) {
		var server *httptest.Server
		calls := 0
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")

			if r.URL.Query().Get("after") == "" {
				assert.Equal(t, "/v22.0/act_42/insights", r.URL.Path)
				assert.Equal(t, "campaign", r.URL.Query().Get("level"))
				assert.Equal(t, "1", r.URL.Query().Get("time_increment"))
				assert.Equal(t, "publisher_platform", r.URL.Query().Get("breakdowns"))
				assert.Equal(t, `{"since":"2025-03-01","until":"2025-03-02"}`, r.URL.Query().Get("time_range"))
				assert.Equal(t, "token-123", r.URL.Query().Get("access_token"))

				_, _ = w.Write([]byte(`{"data":[{"campaign_id":"c1","date_start":"2025-03-01","publisher_platform":"facebook","impressions":"100"}],
					"paging":{"next":"` + server.URL + `/v22.0/act_42/insights?after=abc"}}`))
				return
			}

			_, _ = w.Write([]byte(`{"data":[{"campaign_id":"c1","date_start":"2025-03-02","publisher_platform":"instagram","impressions":"50"}],"paging":{}}`))
		}))
		defer server.Close()

		insights, err := newTestClient(server.URL).GetDailyInsights(context.Background(), "act_42", since, until)

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.Len(t, insights, 2)
		assert.Equal(t, "facebook", insights[0].PublisherPlatform)
		assert.Equal(t, "2025-03-02", insights[1].DateStart)
	})

	tests := []struct {
		name      string
		status    int
		body      string
		targetErr error
	}{
		{
			name:      "token expirado",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"Session has expired","type":"OAuthException","code":190}}`,
			targetErr: ErrTokenExpired,
		},
		{
			name:      "limite de chamadas",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"User request limit reached","type":"OAuthException","code":17}}`,
			targetErr: ErrRateLimited,
		},
		{
			name:   "erro sem corpo estruturado",
			status: http.StatusBadGateway,
			body:   `bad gateway`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			insights, err := newTestClient(server.URL).GetDailyInsights(context.Background(), "42", since, until)

			require.Error(t, err)
			assert.Nil(t, insights)
			if tt.targetErr != nil {
				assert.True(t, errors.Is(err, tt.targetErr))
			} else {
				assert.Contains(t, err.Error(), "502")
			}
		})
	}
}
