package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/internal/config"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

// ReportArchiver é implementado por reporting.Service
type ReportArchiver interface {
	ArchiveMonthlyReport(now time.Time) (*domain.MonthlyReport, error)
}

// MonthlyReportSyncConfig representa a configuração do agendador de relatórios mensais
type MonthlyReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MonthlyReportSyncService arquiva periodicamente a fotografia do painel
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	archiver            ReportArchiver
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastArchivedPeriod  string
	skippedSyncs        int
}

// NewMonthlyReportSyncService cria uma nova instância do serviço de arquivamento mensal
func NewMonthlyReportSyncService(archiver ReportArchiver, appConfig *config.Config) *MonthlyReportSyncService {
	syncConfig := MonthlyReportSyncConfig{
		CronSchedule: appConfig.MonthlyReportSync.CronSchedule,
		SyncEnabled:  appConfig.MonthlyReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios mensais carregada")

	return &MonthlyReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		archiver:  archiver,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Arquivamento mensal de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios mensais")

	// A execução agendada fecha o mês anterior: no dia 1, ontem ainda é o mês que terminou
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReport(s.now().AddDate(0, 0, -1))
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar arquivamento mensal de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReport arquiva o painel calculado na data de referência
func (s *MonthlyReportSyncService) syncMonthlyReport(reference time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.skippedSyncs++
		s.syncMutex.Unlock()
		logrus.Info("Arquivamento mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	period := utils.MonthPeriod(reference)
	logrus.WithField("period", period).Info("Iniciando arquivamento do relatório mensal")

	report, err := s.archiver.ArchiveMonthlyReport(reference)
	if err != nil {
		logrus.WithError(err).WithField("period", period).Error("Erro ao arquivar relatório mensal")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastArchivedPeriod = report.Period
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"period":   report.Period,
		"duration": time.Since(startTime).String(),
	}).Info("Arquivamento do relatório mensal concluído")
}

// TriggerManualSync arquiva imediatamente o mês corrente
// Uma execução em andamento faz a nova ser ignorada por syncMonthlyReport
func (s *MonthlyReportSyncService) TriggerManualSync() {
	logrus.Info("Iniciando arquivamento manual do relatório mensal")
	go s.syncMonthlyReport(s.now())
}

// GetStatus retorna o status atual do arquivamento
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_archived_period":   s.lastArchivedPeriod,
		"skipped_syncs":          s.skippedSyncs,
	}
}
