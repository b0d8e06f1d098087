package gemini

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// limiter bir vaqtdagi so'rovlar soni va so'rovlar orasidagi minimal interval
type limiter struct {
	sem  chan struct{}
	pace *rate.Limiter
}

func newLimiter(concurrency int, delay time.Duration) *limiter {
	return &limiter{
		sem:  make(chan struct{}, concurrency),
		pace: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// acquire slot va navbatni kutadi; ctx bekor qilinsa darhol qaytadi
func (l *limiter) acquire(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if err := l.pace.Wait(ctx); err != nil {
		<-l.sem
		return nil, err
	}
	return func() { <-l.sem }, nil
}
