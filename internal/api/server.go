package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/internal/api/handler"
	"github.com/vfg2006/revenue-planning-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-planning-api/internal/config"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-planning-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	recordService records.RecordService,
	insightService insighting.Insighter,
	reportService reporting.ReportService,
	monthlyReportSyncService handler.CronSyncer,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MonthlyReportSyncService: monthlyReportSyncService,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, recordService, insightService, reportService, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o roteador com a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	recordService records.RecordService,
	insightService insighting.Insighter,
	reportService reporting.ReportService,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Contracts(recordService, insightService)...),
		router.WithRoutes(handler.Negotiations(recordService, insightService)...),
		router.WithRoutes(handler.Marketing(recordService, insightService)...),
		router.WithRoutes(handler.Team(recordService, insightService)...),
		router.WithRoutes(handler.Insights(insightService, config.Forecast.DashboardMonths)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
