package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var patterns []string
	rt := New(
		WithInstrumentation(func(pattern string) func(http.Handler) http.Handler {
			patterns = append(patterns, pattern)
			return tag("instrument")
		}),
		WithRoutes(Route{
			Path:   "/v1/items/:id",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
			}),
			Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
		}),
	)

	t.Run("aplica os middlewares na ordem declarada", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/items/42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "42", rec.Body.String())
		assert.Equal(t, []string{"instrument", "first", "second", "handler"}, order)
		assert.Equal(t, []string{"/v1/items/:id"}, patterns)
	})

	t.Run("rota inexistente responde JSON 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "RES_001")
	})
}
