package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenInfo é o subconjunto de /debug_token usado para decidir a renovação
type TokenInfo struct {
	IsValid   bool  `json:"is_valid"`
	ExpiresAt int64 `json:"expires_at"`
}

type debugTokenResponse struct {
	Data TokenInfo `json:"data"`
}

// exchangeToken troca token por um de longa duração (fb_exchange_token)
func exchangeToken(ctx context.Context, httpClient *http.Client, graphURL, appID, appSecret, token string) (*TokenResponse, error) {
	if token == "" {
		return nil, errors.New("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", appID)
	params.Add("client_secret", appSecret)
	params.Add("fb_exchange_token", token)

	var tokenResp TokenResponse
	if err := getJSON(ctx, httpClient, graphURL+"/oauth/access_token?"+params.Encode(), &tokenResp); err != nil {
		return nil, errors.Wrap(err, "erro ao obter token de longa duração")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// debugToken consulta validade e expiração do token com o app token (id|secret)
func debugToken(ctx context.Context, httpClient *http.Client, graphURL, appID, appSecret, token string) (*TokenInfo, error) {
	params := url.Values{}
	params.Add("input_token", token)
	params.Add("access_token", appID+"|"+appSecret)

	var response debugTokenResponse
	if err := getJSON(ctx, httpClient, graphURL+"/debug_token?"+params.Encode(), &response); err != nil {
		return nil, errors.Wrap(err, "erro ao obter informações de debug do token")
	}

	return &response.Data, nil
}

func getJSON(ctx context.Context, httpClient *http.Client, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return parseError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

// tokenExpiration desconta um dia da validade para renovar antes do fim.
// Validades menores que um dia usam metade do tempo.
func tokenExpiration(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return time.Time{}
	}

	safe := expiresIn - int64(24*time.Hour/time.Second)
	if safe < 0 {
		safe = expiresIn / 2
	}

	return now.Add(time.Duration(safe) * time.Second)
}

// formatDuration formata segundos como "N dias, N horas e N minutos"
func formatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

func graphURL(baseURL, version string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.Trim(version, "/")
}
