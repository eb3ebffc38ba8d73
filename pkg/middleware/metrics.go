package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics はHTTPリクエストのメトリクスを収集するGinミドルウェアを返す。
// リクエスト数とレイテンシをメソッド・パス・ステータスコード別に記録する。
// 収集したメトリクスは /metrics エンドポイントでPrometheus形式で公開される。
func Metrics(reg prometheus.Registerer) gin.HandlerFunc {
	factory := promauto.With(reg)
	requestsTotal := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTPリクエストの総数。",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTPリクエストの処理時間（秒）。",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// パラメータ付きパスはルート定義（/posts/:id）単位で集計する
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		requestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
