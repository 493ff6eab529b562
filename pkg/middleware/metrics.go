package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests by path and method",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by path, method and status",
	}, []string{"method", "path", "status"})
)

// InitMetrics registra os coletores HTTP no registry default.
func InitMetrics() {
	prometheus.MustRegister(httpRequestDuration, httpRequestsTotal)
}

// MetricsMiddleware mede latência e contagem por rota. Usa o path cru da
// requisição; rotas com ID têm cardinalidade controlada pelo router.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(mrw, r)

			duration := time.Since(startTime).Seconds()
			httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
			httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(mrw.statusCode)).Inc()
		})
	}
}
