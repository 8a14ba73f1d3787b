package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume", Name: "renders_total", Help: "Documents rendered by renderer."},
		[]string{"renderer"},
	)
	RenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume",
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds by renderer.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
		[]string{"renderer"},
	)
	DownloadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "resume", Name: "downloads_total", Help: "Documents served as downloads."},
	)
	RateLimitRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "resume", Name: "rate_limit_rejected_total", Help: "Requests rejected by the rate limiter."},
	)
	RenderCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume", Name: "render_cache_hits_total", Help: "Documents served from the render cache by renderer."},
		[]string{"renderer"},
	)
)

// Registry holds the collectors exposed at /metrics.
var Registry = prometheus.NewRegistry()

func init() {
	RegisterCollectors(Registry)
}

// RegisterCollectors registers the résumé collectors with reg.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RendersTotal)
	reg.MustRegister(RenderDuration)
	reg.MustRegister(DownloadsTotal)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(RenderCacheHits)
}

// ObserveRender records one completed render.
func ObserveRender(renderer string, seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	RendersTotal.WithLabelValues(renderer).Inc()
	RenderDuration.WithLabelValues(renderer).Observe(seconds)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
