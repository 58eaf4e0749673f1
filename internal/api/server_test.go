package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/api/handler"
	"github.com/vfg2006/revenue-planning-api/internal/config"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/reporting"
)

func newTestHandler() http.Handler {
	cfg := &config.Config{
		Server:   config.Server{AllowedOrigins: []string{"https://planner.example.com"}},
		Forecast: config.Forecast{DashboardMonths: 12, AnnualMonths: 24, AnnualStart: "2025-01"},
	}

	store := repository.NewRecordStore()
	insightService := insighting.NewService(cfg, store)

	return NewHandler(
		cfg,
		records.NewService(store),
		insightService,
		reporting.NewService(insightService, repository.NewMemoryMonthlyReportRepository()),
		handler.CronJobServices{},
	)
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler()

	t.Run("serves routes through middleware chain", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "https://planner.example.com")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://planner.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight without routing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/contracts", nil)
		req.Header.Set("Origin", "https://planner.example.com")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})

	t.Run("unknown route returns not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/unknown", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status without schedulers is empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
}
