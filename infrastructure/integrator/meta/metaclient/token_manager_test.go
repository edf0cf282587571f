package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
)

func renewableConfig(serverURL string) config.Meta {
	return config.Meta{
		URL:         serverURL + "/v22.0",
		AccessToken: "short-token",
		AppID:       "app",
		AppSecret:   "secret",
		Timeout:     time.Second,
	}
}

func TestTokenManager_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v22.0/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "short-token", r.URL.Query().Get("fb_exchange_token"))
		assert.Equal(t, "app", r.URL.Query().Get("client_id"))

		_, _ = w.Write([]byte(`{"access_token":"long-token","token_type":"bearer","expires_in":5184000}`))
	}))
	defer server.Close()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager(renewableConfig(server.URL))
	tm.now = func() time.Time { return now }

	require.NoError(t, tm.Refresh(context.Background()))

	assert.Equal(t, "long-token", tm.Token())
	assert.Equal(t, now.Add(59*24*time.Hour), tm.ExpiresAt())
}

func TestTokenManager_RefreshWithoutAppCredentials(t *testing.T) {
	tm := NewTokenManager(config.Meta{URL: "http://localhost", AccessToken: "static"})

	assert.False(t, tm.CanRefresh())
	assert.ErrorIs(t, tm.Refresh(context.Background()), ErrTokenNotRenewable)
	assert.NoError(t, tm.Init(context.Background()))
	assert.Equal(t, "static", tm.Token())
}

func TestTokenManager_Init(t *testing.T) {
	tests := []struct {
		name          string
		debugBody     string
		expectedToken string
		exchanges     int32
	}{
		{
			name:          "token longo válido e distante da expiração é mantido",
			debugBody:     `{"data":{"is_valid":true,"expires_at":1748736000}}`,
			expectedToken: "long-token",
			exchanges:     0,
		},
		{
			name:          "token longo inválido é renovado",
			debugBody:     `{"data":{"is_valid":false}}`,
			expectedToken: "renewed-token",
			exchanges:     1,
		},
		{
			name:          "token longo perto de expirar é renovado",
			debugBody:     `{"data":{"is_valid":true,"expires_at":1740916800}}`,
			expectedToken: "renewed-token",
			exchanges:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exchanges atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/v22.0/debug_token":
					assert.Equal(t, "long-token", r.URL.Query().Get("input_token"))
					assert.Equal(t, "app|secret", r.URL.Query().Get("access_token"))
					_, _ = w.Write([]byte(tt.debugBody))
				case "/v22.0/oauth/access_token":
					exchanges.Add(1)
					_, _ = w.Write([]byte(`{"access_token":"renewed-token","expires_in":5184000}`))
				default:
					w.WriteHeader(http.StatusNotFound)
				}
			}))
			defer server.Close()

			cfg := renewableConfig(server.URL)
			cfg.LongLivedToken = "long-token"

			tm := NewTokenManager(cfg)
			tm.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

			require.NoError(t, tm.Init(context.Background()))
			assert.Equal(t, tt.expectedToken, tm.Token())
			assert.Equal(t, tt.exchanges, exchanges.Load())
		})
	}
}

func TestTokenManager_InitExchangesShortToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v22.0/oauth/access_token", r.URL.Path)
		_, _ = w.Write([]byte(`{"access_token":"long-token","expires_in":5184000}`))
	}))
	defer server.Close()

	tm := NewTokenManager(renewableConfig(server.URL))

	require.NoError(t, tm.Init(context.Background()))
	assert.Equal(t, "long-token", tm.Token())
}

func TestTokenManager_StopWithoutStart(t *testing.T) {
	tm := NewTokenManager(config.Meta{URL: "http://localhost", AccessToken: "static"})

	done := make(chan struct{})
	go func() {
		tm.Stop()
		tm.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop bloqueou sem StartAutoRefresh")
	}
}

func TestTokenManager_AutoRefresh(t *testing.T) {
	var exchanges atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges.Add(1)
		_, _ = w.Write([]byte(`{"access_token":"long-token","expires_in":5184000}`))
	}))
	defer server.Close()

	cfg := renewableConfig(server.URL)
	cfg.TokenRefreshInterval = 10 * time.Millisecond

	tm := NewTokenManager(cfg)
	tm.StartAutoRefresh(context.Background())

	assert.Eventually(t, func() bool { return exchanges.Load() >= 1 }, time.Second, 5*time.Millisecond)
	tm.Stop()

	assert.Equal(t, "long-token", tm.Token())
}

func TestMetaClient_RefreshesExpiredToken(t *testing.T) {
	var insightCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v22.0/oauth/access_token":
			_, _ = w.Write([]byte(`{"access_token":"fresh-token","expires_in":5184000}`))
		case "/v22.0/act_42/insights":
			insightCalls.Add(1)
			if r.URL.Query().Get("access_token") != "fresh-token" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"Session has expired","type":"OAuthException","code":190}}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":[{"campaign_id":"c1","date_start":"2025-03-01","publisher_platform":"facebook"}],"paging":{}}`))
		}
	}))
	defer server.Close()

	cfg := renewableConfig(server.URL)
	tokens := NewTokenManager(cfg)
	client := NewClient(cfg, tokens)

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	insights, err := client.GetDailyInsights(context.Background(), "42", day, day)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, int32(2), insightCalls.Load())
	assert.Equal(t, "fresh-token", tokens.Token())
}
