package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/vfg2006/revenue-planning-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-planning-api/internal/config"
	"github.com/vfg2006/revenue-planning-api/pkg/log"
)

const createMonthlyReportsTable = `
	CREATE TABLE IF NOT EXISTS monthly_reports (
		id SERIAL PRIMARY KEY,
		period VARCHAR(7) NOT NULL,
		summary JSONB NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)
`

func createMonthlyReports(tx *sql.Tx) error {
	log.L.Info("Criando tabela monthly_reports...")

	if _, err := tx.Exec(createMonthlyReportsTable); err != nil {
		return err
	}

	// Verificar se a constraint já existe
	var constraintExists bool
	err := tx.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE table_name = 'monthly_reports'
			AND constraint_type = 'UNIQUE'
			AND constraint_name = 'monthly_reports_period_unique'
		)
	`).Scan(&constraintExists)
	if err != nil {
		return err
	}

	if constraintExists {
		log.L.Info("Constraint UNIQUE já existe na coluna period da tabela monthly_reports")
		return nil
	}

	_, err = tx.Exec("ALTER TABLE monthly_reports ADD CONSTRAINT monthly_reports_period_unique UNIQUE (period)")
	return err
}

func main() {
	log.L.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	startTime := time.Now()

	if err := conn.RunInTransaction(ctx, createMonthlyReports); err != nil {
		log.L.Errorf("ERRO ao executar migração: %v", err)
		os.Exit(1)
	}

	log.L.Infof("Migração concluída em %v!", time.Since(startTime))
}
