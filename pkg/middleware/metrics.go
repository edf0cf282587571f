package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-analytics-api/pkg/metrics"
)

// Metrics registra contagem e duração das requisições usando o padrão da rota
// como label, para não criar uma série por ID
func Metrics(m *metrics.Metrics) func(pattern string) func(http.Handler) http.Handler {
	return func(pattern string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				lrw := newLoggingResponseWriter(w)
				startTime := time.Now()

				next.ServeHTTP(lrw, r)

				m.ObserveHTTPRequest(r.Method, pattern, lrw.statusCode, time.Since(startTime))
			})
		}
	}
}
