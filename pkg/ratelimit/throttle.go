// Package ratelimit limita a frequência de atualizações: Throttler garante
// um intervalo mínimo entre execuções e Debouncer agrupa rajadas de chamadas.
package ratelimit

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	DefaultThrottleInterval = 1000 * time.Millisecond
	DefaultDebounceWait     = 300 * time.Millisecond
	DefaultCapacity         = 1024
)

// Throttler permite no máximo uma execução por intervalo para cada chave.
// Os limiters ficam num LRU com TTL de um intervalo: um limiter sem uso por
// um intervalo já está cheio, então descartá-lo não muda o resultado.
type Throttler struct {
	interval time.Duration
	capacity int
	mu       sync.Mutex
	limiters *lru.LRU[string, *rate.Limiter]
}

func NewThrottler(interval time.Duration, capacity int) *Throttler {
	if interval <= 0 {
		interval = DefaultThrottleInterval
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Throttler{
		interval: interval,
		capacity: capacity,
		limiters: lru.NewLRU[string, *rate.Limiter](capacity, nil, interval),
	}
}

// Allow consome o token da chave e indica se a execução pode acontecer agora
func (t *Throttler) Allow(key string) bool {
	return t.AllowAt(key, time.Now())
}

// AllowAt é Allow com o instante informado
func (t *Throttler) AllowAt(key string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	limiter, ok := t.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rate.Every(t.interval), 1)
	}

	allowed := limiter.AllowN(now, 1)
	if allowed || !ok {
		// renova o TTL a partir do último consumo
		t.limiters.Add(key, limiter)
	}

	return allowed
}

func (t *Throttler) Interval() time.Duration {
	return t.interval
}

// Capacity é o número máximo de chaves acompanhadas
func (t *Throttler) Capacity() int {
	return t.capacity
}

// Len retorna quantas chaves estão sendo acompanhadas
func (t *Throttler) Len() int {
	return t.limiters.Len()
}
