package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
)

func GetDashboard(service insighting.DashboardInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetDashboard")

		writeJSON(w, http.StatusOK, service.GetDashboard(time.Now()))
	})
}

func GetVerticalMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetVerticalMetrics())
	})
}
