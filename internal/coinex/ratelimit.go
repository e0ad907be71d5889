package coinex

import (
	"time"
)

// RateLimiter is a token bucket for the public endpoints. CoinEx allows
// 400 requests per second on market data; the default here stays far
// below that because the bot bursts kline requests during a screen.
type RateLimiter struct {
	tokens chan struct{}
}

func NewRateLimiter(requestsPerSecond int) *RateLimiter {
	rl := &RateLimiter{
		tokens: make(chan struct{}, requestsPerSecond),
	}

	for i := 0; i < requestsPerSecond; i++ {
		rl.tokens <- struct{}{}
	}

	go rl.refill(requestsPerSecond)

	return rl
}

func (rl *RateLimiter) refill(requestsPerSecond int) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		for i := 0; i < requestsPerSecond; i++ {
			select {
			case rl.tokens <- struct{}{}:
			default:
				// bucket is full
			}
		}
	}
}

func (rl *RateLimiter) Wait() {
	<-rl.tokens
}
