package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-planning-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	monthlyReportsTable = "monthly_reports mr"
)

//go:generate mockgen -source=monthly_report.go -destination=mocks/monthly_report_mock.go -package=mocks
type MonthlyReportRepository interface {
	GetByPeriod(period string) (*domain.MonthlyReport, error)
	SaveOrUpdate(report *domain.MonthlyReport) error
	GetAllPeriods() ([]string, error)
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

// GetByPeriod retorna nil, nil quando não há relatório arquivado no período (mm-yyyy)
func (r *monthlyReportRepository) GetByPeriod(period string) (*domain.MonthlyReport, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.period, mr.summary, mr.created_at, mr.updated_at").
		From(monthlyReportsTable).
		Where(squirrel.Eq{"mr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.MonthlyReport{}
	var summaryJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&report.ID,
		&report.Period,
		&summaryJSON,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório mensal: %w", err)
	}

	if summaryJSON != nil {
		summary := &domain.DashboardSummary{}
		if err := json.Unmarshal(summaryJSON, summary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de summary: %w", err)
		}
		report.Summary = summary
	}

	return report, nil
}

func (r *monthlyReportRepository) SaveOrUpdate(report *domain.MonthlyReport) error {
	summaryJSON, err := json.Marshal(report.Summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar summary para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_reports").
		Columns("period", "summary").
		Values(report.Period, summaryJSON).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				summary = EXCLUDED.summary,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetAllPeriods retorna todos os períodos disponíveis no formato mm-yyyy, em ordem cronológica
func (r *monthlyReportRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("period").
		From("monthly_reports").
		OrderBy("TO_DATE(period, 'MM-YYYY') ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// memoryMonthlyReportRepository guarda os relatórios enquanto o processo estiver de pé
type memoryMonthlyReportRepository struct {
	mu      sync.RWMutex
	reports map[string]domain.MonthlyReport
	nextID  int
	now     func() time.Time
}

// NewMemoryMonthlyReportRepository é usado quando DATABASE_ENABLED=false
func NewMemoryMonthlyReportRepository() MonthlyReportRepository {
	return &memoryMonthlyReportRepository{
		reports: make(map[string]domain.MonthlyReport),
		nextID:  1,
		now:     time.Now,
	}
}

func (r *memoryMonthlyReportRepository) GetByPeriod(period string) (*domain.MonthlyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[period]
	if !exists {
		return nil, nil
	}
	return &report, nil
}

func (r *memoryMonthlyReportRepository) SaveOrUpdate(report *domain.MonthlyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	stored, exists := r.reports[report.Period]
	if !exists {
		stored = domain.MonthlyReport{ID: r.nextID, Period: report.Period, CreatedAt: now}
		r.nextID++
	}
	stored.Summary = report.Summary
	stored.UpdatedAt = now

	r.reports[report.Period] = stored
	return nil
}

func (r *memoryMonthlyReportRepository) GetAllPeriods() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	periods := make([]string, 0, len(r.reports))
	for period := range r.reports {
		periods = append(periods, period)
	}

	sort.Slice(periods, func(i, j int) bool {
		a, errA := utils.ParseMonthPeriod(periods[i])
		b, errB := utils.ParseMonthPeriod(periods[j])
		if errA != nil || errB != nil {
			return periods[i] < periods[j]
		}
		return a.Before(b)
	})

	return periods, nil
}
