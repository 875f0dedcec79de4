package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const RequestIDHeader = "X-Request-ID"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studynotes",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studynotes",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	summarizerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studynotes",
		Name:      "summarizer_calls_total",
		Help:      "Summarizer invocations, one per chunk.",
	}, []string{"backend", "result"})

	// Summarization of long chunks regularly takes tens of seconds.
	summarizerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studynotes",
		Name:      "summarizer_duration_seconds",
		Help:      "Latency of a single summarizer call.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80, 160},
	}, []string{"backend"})

	enrichmentChunks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "studynotes",
		Name:      "enrichment_chunks",
		Help:      "Number of chunks a note text was split into before summarization.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})
)

// ObserveSummarizerCall records one summarizer call.
func ObserveSummarizerCall(backend string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	summarizerCalls.WithLabelValues(backend, result).Inc()
	summarizerDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

// ObserveChunks records how many chunks one enrichment produced.
func ObserveChunks(n int) {
	enrichmentChunks.Observe(float64(n))
}

// Middleware assigns a request id and records request counts and latency.
// Routes are labelled by their registered pattern to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
