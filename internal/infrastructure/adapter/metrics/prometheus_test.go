package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

func TestPrometheus(t *testing.T) {
	t.Run("Settlement counters", func(t *testing.T) {
		p := NewPrometheus()

		p.RecordSettlement("ad_view", core.OutcomeSuccess, 5*core.Millisecond)
		p.RecordSettlement("ad_view", core.OutcomeSuccess, 5*core.Millisecond)
		p.RecordSettlement("store_extra_lives", core.OutcomeRejected, core.Millisecond)
		p.AddPointsCredited("ad_view", 20)
		p.AddPointsCredited("ad_view", 0)

		assert.Equal(t, 2.0, testutil.ToFloat64(p.settlements.WithLabelValues("ad_view", core.OutcomeSuccess)))
		assert.Equal(t, 1.0, testutil.ToFloat64(p.settlements.WithLabelValues("store_extra_lives", core.OutcomeRejected)))
		assert.Equal(t, 20.0, testutil.ToFloat64(p.pointsCredited.WithLabelValues("ad_view")))
	})

	t.Run("HTTP and rate limit counters", func(t *testing.T) {
		p := NewPrometheus()

		p.ObserveHTTP(http.MethodPost, "/api/ad-views", http.StatusCreated, 10*time.Millisecond)
		p.RateLimited("/api/ad-views")

		assert.Equal(t, 1.0, testutil.ToFloat64(p.httpRequests.WithLabelValues("POST", "/api/ad-views", "201")))
		assert.Equal(t, 1.0, testutil.ToFloat64(p.rateLimited.WithLabelValues("/api/ad-views")))
	})

	t.Run("Handler exposes the registry", func(t *testing.T) {
		p := NewPrometheus()
		p.AddPointsCredited("ad_view", 7)
		rec := httptest.NewRecorder()

		p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `gemasgo_points_credited_total{source="ad_view"} 7`)
	})
}
