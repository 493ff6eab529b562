// Package scheduler concentra os jobs periódicos do gerente.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/infrastructure/repository"
	"github.com/ghosteone/manager-api/internal/config"
	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/internal/usecases/scoring"
)

// ScoreSyncConfig representa a configuração do agendador de recomputo de scores
type ScoreSyncConfig struct {
	CronSchedule      string
	WindowHours       int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// ScoreSyncService recomputa periodicamente o score das campanhas ativas.
// Cada execução é idempotente por natureza: scores são append-only, então
// rodar duas vezes só gera registros a mais, nunca corrompe histórico.
type ScoreSyncService struct {
	scheduler           *gocron.Scheduler
	config              ScoreSyncConfig
	appConfig           *config.Config
	campaignRepo        repository.CampaignRepository
	scorer              scoring.Scorer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewScoreSyncService cria uma nova instância do serviço de recomputo de scores
func NewScoreSyncService(
	campaignRepo repository.CampaignRepository,
	scorer scoring.Scorer,
	appConfig *config.Config,
) *ScoreSyncService {
	syncConfig := ScoreSyncConfig{
		CronSchedule:      appConfig.ScoreSync.CronSchedule,
		WindowHours:       appConfig.ScoreSync.WindowHours,
		MaxConcurrentJobs: appConfig.ScoreSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.ScoreSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"window_hours":        syncConfig.WindowHours,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de recomputo de scores carregada")

	return &ScoreSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		campaignRepo: campaignRepo,
		scorer:       scorer,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *ScoreSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recomputo periódico de scores desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recomputo de scores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllScores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recomputo de scores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recomputo de scores")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllScores recomputa o score de todas as campanhas ativas
func (s *ScoreSyncService) syncAllScores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputo de scores já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recomputo de scores para todas as campanhas ativas")

	campaigns, err := s.campaignRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas ativas para recomputo de scores")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa encontrada para recomputo de scores")
		return
	}

	scored := s.processCampaigns(campaigns)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(campaigns),
		"scored":    scored,
	}).Info("Recomputo de scores concluído")

	s.lastSyncCompletedAt = time.Now()
}

// processCampaigns calcula os scores com concorrência limitada por semáforo.
// Falha em uma campanha não interrompe as demais.
func (s *ScoreSyncService) processCampaigns(campaigns []*domain.CampaignSummary) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var mutex sync.Mutex
	scored := 0

	for _, campaign := range campaigns {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(c *domain.CampaignSummary) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			score, err := s.scorer.ComputeScore(c.OwnerID, c.Kind, c.ID, s.config.WindowHours)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"campaign_id": c.ID,
					"owner_id":    c.OwnerID,
				}).Error("Erro ao recomputar score de campanha")
				return
			}

			logrus.WithFields(logrus.Fields{
				"campaign_id": c.ID,
				"score":       score.Score,
				"grade":       score.Grade,
			}).Info("Score de campanha recomputado")

			mutex.Lock()
			scored++
			mutex.Unlock()
		}(campaign)
	}

	wg.Wait()
	return scored
}

// TriggerManualSync inicia manualmente um recomputo de scores
func (s *ScoreSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputo de scores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recomputo manual de scores")
	go s.syncAllScores()
}

// GetStatus retorna o status atual do agendador
func (s *ScoreSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_window_hours":      s.config.WindowHours,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
