package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
)

// CronJobTypeMonthlyReport arquiva o painel do mês corrente
const CronJobTypeMonthlyReport = "monthly-report"

// CronSyncer é implementado pelos agendadores que aceitam execução manual
type CronSyncer interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	MonthlyReportSyncService CronSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeMonthlyReport:
			if services.MonthlyReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de arquivamento mensal não disponível", nil)
				return
			}
			services.MonthlyReportSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido. Valores aceitos: monthly-report", map[string]any{"type": cronType})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.MonthlyReportSyncService != nil {
			status[CronJobTypeMonthlyReport] = services.MonthlyReportSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
