package metrics

import "github.com/prometheus/client_golang/prometheus"

var HttpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests received",
	},
	[]string{"endpoint", "status", "method"},
)

var HttpRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint", "method"},
)

var HttpErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_errors_total",
		Help: "Total number of failed HTTP requests (4xx/5xx)",
	},
	[]string{"endpoint", "status", "method"},
)

var NotificationsDispatchedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifications_dispatched_total",
		Help: "Total number of dispatched notifications by delivery outcome",
	},
	[]string{"delivery"},
)

var WebsocketConnections = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "websocket_connections",
		Help: "Number of currently open WebSocket connections",
	},
)

var WebsocketAuthTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "websocket_auth_total",
		Help: "Total number of successful WebSocket authentications",
	},
)

func InitAPIMetrics() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(HttpErrorsTotal)
	prometheus.MustRegister(NotificationsDispatchedTotal)
	prometheus.MustRegister(WebsocketConnections)
	prometheus.MustRegister(WebsocketAuthTotal)
}
