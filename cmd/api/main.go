package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/api"
	"github.com/vfg2006/revenue-planning-api/internal/config"
	"github.com/vfg2006/revenue-planning-api/internal/scheduler"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-planning-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := repository.NewRecordStore()
	if cfg.App.SeedDemoData {
		store.Seed(repository.DemoDataset())
		logrus.Info("Dados de demonstração carregados")
	}

	var reportRepo repository.MonthlyReportRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		reportRepo = repository.NewMonthlyReportRepository(pgConn)
	} else {
		logrus.Warn("Banco de dados desabilitado, relatórios mensais mantidos apenas em memória")
		reportRepo = repository.NewMemoryMonthlyReportRepository()
	}

	recordService := records.NewService(store)
	insightService := insighting.NewService(cfg, store)
	reportService := reporting.NewService(insightService, reportRepo)

	monthlyReportSyncService := scheduler.NewMonthlyReportSyncService(reportService, cfg)
	if err := monthlyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de arquivamento mensal")
	}

	server, err := api.New(
		cfg,
		recordService,
		insightService,
		reportService,
		monthlyReportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
