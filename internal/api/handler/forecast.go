package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

const maxForecastMonths = 120

// GetForecast aceita months (1 a 120) e start no formato YYYY-MM
func GetForecast(service insighting.ForecastInsighter, defaultMonths int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetForecast")

		query := r.URL.Query()

		months := defaultMonths
		if value := query.Get("months"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 1 || parsed > maxForecastMonths {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro months deve ser um número entre 1 e 120", nil)
				return
			}
			months = parsed
		}

		start := utils.FirstDayOfMonth(time.Now())
		if value := query.Get("start"); value != "" {
			parsed, err := utils.ParseMonth(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start deve estar no formato YYYY-MM", nil)
				return
			}
			start = parsed
		}

		writeJSON(w, http.StatusOK, service.GetForecast(months, start))
	})
}

func GetAnnualForecast(service insighting.ForecastInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetAnnualForecast())
	})
}
