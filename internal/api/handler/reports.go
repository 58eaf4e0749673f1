package handler

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
)

var (
	monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// GetMonthlyReport retorna o painel arquivado do período informado por month e year
func GetMonthlyReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMonthlyReport")

		month := r.URL.Query().Get("month")
		year := r.URL.Query().Get("year")

		if month == "" || year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros month e year são obrigatórios", nil)
			return
		}

		if !monthPattern.MatchString(month) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use o formato MM (01-12)", nil)
			return
		}

		if !yearPattern.MatchString(year) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use o formato YYYY", nil)
			return
		}

		report, err := service.GetReportByPeriod(fmt.Sprintf("%s-%s", month, year))
		if err != nil {
			logrus.WithError(err).WithField("period", month+"-"+year).Warn("Erro ao buscar relatório mensal")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetAvailableReportPeriods(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAvailableReportPeriods")

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar períodos disponíveis", nil)
			return
		}

		writeJSON(w, http.StatusOK, periods)
	})
}
