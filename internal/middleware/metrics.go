package middleware

import (
	"net/http"
	"time"

	"starwars-api/internal/shared/metrics"
)

// Metrics records request counts and latencies labelled by the matched route
// pattern, which keeps label cardinality bounded.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			m.RequestStarted()
			defer func() {
				m.RequestFinished(r.Method, r.Pattern, rec.status, time.Since(start))
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
