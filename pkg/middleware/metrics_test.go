package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TestMetrics はMetricsミドルウェアを検証する。
func TestMetrics(t *testing.T) {
	t.Parallel()

	t.Run("リクエスト数がメソッド・パス・ステータス別に記録されること", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		router := gin.New()
		router.Use(Metrics(reg))
		router.GET("/posts/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		// 同じルートに2回リクエストする
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
			}
		}

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		body := w.Body.String()
		if !strings.Contains(body, `http_requests_total{method="GET",path="/posts/:id",status="200"} 2`) {
			t.Errorf("リクエストカウンタが記録されていない: %s", body)
		}
	})

	t.Run("未定義ルートはunmatchedとして記録されること", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		router := gin.New()
		router.Use(Metrics(reg))
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		req2 := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, req2)

		if !strings.Contains(w2.Body.String(), `path="unmatched"`) {
			t.Errorf("未定義ルートがunmatchedとして記録されていない: %s", w2.Body.String())
		}
	})
}
