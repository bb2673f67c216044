package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// trafficControl layers the request gates: a global rate limit for every API
// route, a stricter limit for the vision endpoint (each call costs a model
// invocation), and a backpressure gate that sheds load once too many
// requests are in flight. Health and metrics stay ungated so probes and
// scrapes keep working under load.
func (rt *Router) trafficControl(next http.Handler) http.Handler {
	apiRPS := rt.cfg.APIRateLimitRPS
	if apiRPS <= 0 {
		apiRPS = 50
	}
	apiBurst := rt.cfg.APIRateLimitBurst
	if apiBurst <= 0 {
		apiBurst = apiRPS
	}
	aiRPS := rt.cfg.AIRateLimitRPS
	if aiRPS <= 0 {
		aiRPS = 2
	}
	aiBurst := rt.cfg.AIRateLimitBurst
	if aiBurst <= 0 {
		aiBurst = aiRPS
	}
	maxInFlight := rt.cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}
	wait := rt.cfg.BackpressureWait
	if wait <= 0 {
		wait = 200 * time.Millisecond
	}

	apiLimiter := rate.NewLimiter(rate.Limit(apiRPS), apiBurst)
	aiLimiter := rate.NewLimiter(rate.Limit(aiRPS), aiBurst)
	gated := backpressureMiddleware(next, maxInFlight, wait)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health", "/metrics":
			next.ServeHTTP(w, r)
			return
		}

		if !apiLimiter.Allow() {
			respondRateLimited(w, apiLimiter)
			return
		}
		if r.URL.Path == "/api/items/detect" && !aiLimiter.Allow() {
			respondRateLimited(w, aiLimiter)
			return
		}

		gated.ServeHTTP(w, r)
	})
}

func respondRateLimited(w http.ResponseWriter, limiter *rate.Limiter) {
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()

	seconds := int(delay.Seconds()) + 1
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	writeJSON(w, http.StatusTooManyRequests, map[string]string{
		"error": "rate limit exceeded, retry later",
	})
}

// backpressureMiddleware admits at most maxInFlight concurrent requests.
// A request that cannot acquire a slot within wait is rejected with 503
// rather than queueing unboundedly.
func backpressureMiddleware(next http.Handler, maxInFlight int, wait time.Duration) http.Handler {
	slots := make(chan struct{}, maxInFlight)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case slots <- struct{}{}:
			defer func() { <-slots }()
			next.ServeHTTP(w, r)
		case <-timer.C:
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error": "server is overloaded, retry later",
			})
		case <-r.Context().Done():
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error": "request cancelled while waiting for capacity",
			})
		}
	})
}
