// Package reporting arquiva e consulta a fotografia mensal do painel
package reporting

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

type ReportService interface {
	ArchiveMonthlyReport(now time.Time) (*domain.MonthlyReport, error)
	GetReportByPeriod(period string) (*domain.MonthlyReport, error)
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}

type Service struct {
	dashboard  insighting.DashboardInsighter
	reportRepo repository.MonthlyReportRepository
}

func NewService(dashboard insighting.DashboardInsighter, reportRepo repository.MonthlyReportRepository) ReportService {
	return &Service{
		dashboard:  dashboard,
		reportRepo: reportRepo,
	}
}

// ArchiveMonthlyReport grava (ou sobrescreve) o painel calculado em now no período do mês de now
func (s *Service) ArchiveMonthlyReport(now time.Time) (*domain.MonthlyReport, error) {
	period := utils.MonthPeriod(now)

	report := &domain.MonthlyReport{
		Period:  period,
		Summary: s.dashboard.GetDashboard(now),
	}

	if err := s.reportRepo.SaveOrUpdate(report); err != nil {
		logrus.WithError(err).WithField("period", period).Error("Erro ao arquivar relatório mensal")
		return nil, NewReportError(errors.Wrap(ErrSaveReport, err.Error()), apiErrors.ErrDatabaseOperation, period)
	}

	logrus.WithFields(logrus.Fields{
		"period":          period,
		"current_revenue": report.Summary.CurrentRevenue,
	}).Info("Relatório mensal arquivado")

	return report, nil
}

// GetReportByPeriod aceita períodos no formato mm-yyyy
func (s *Service) GetReportByPeriod(period string) (*domain.MonthlyReport, error) {
	if _, err := utils.ParseMonthPeriod(period); err != nil {
		return nil, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, period)
	}

	report, err := s.reportRepo.GetByPeriod(period)
	if err != nil {
		return nil, NewReportError(errors.Wrap(ErrFetchReport, err.Error()), apiErrors.ErrDatabaseOperation, period)
	}

	if report == nil {
		return nil, NewReportError(ErrReportNotFound, apiErrors.ErrRecordNotFound, period)
	}

	return report, nil
}

func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.reportRepo.GetAllPeriods()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar períodos de relatórios mensais")
	}

	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	// Extrair ano e mês do período (formato mm-yyyy)
	for _, period := range periods {
		if len(period) != 7 {
			continue
		}
		monthMap[period[:2]] = true
		yearMap[period[3:]] = true
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	sort.Strings(years)
	sort.Strings(months)

	logrus.Debugf("Encontrados %d períodos de relatórios mensais", len(periods))

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}
