package histstore

import (
	"math"
	"time"
)

const (
	backoffBase   = 5 * time.Second
	jitterSpan    = 2 * time.Second
	initialFloor  = 1 * time.Second
	initialJitter = 1 * time.Second
)

// initialDelay is the randomized pause before the first remote attempt,
// uniform in [1s, 2s), to avoid bursting the remote service.
func initialDelay(randFloat func() float64) time.Duration {
	return initialFloor + time.Duration(randFloat()*float64(initialJitter))
}

// retryDelay returns the jittered exponential backoff before retry
// number attempt (attempt >= 1): 5·2^attempt seconds plus uniform [0s, 2s).
func retryDelay(attempt int, randFloat func() float64) time.Duration {
	backoff := time.Duration(float64(backoffBase) * math.Pow(2, float64(attempt)))
	return backoff + time.Duration(randFloat()*float64(jitterSpan))
}
