// Package aggregating monta o snapshot reconciliado ("manager context")
// que alimenta o raciocínio da IA e o motor de decisão.
package aggregating

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/infrastructure/repository"
	"github.com/ghosteone/manager-api/internal/config"
	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/internal/usecases/connecting"
)

type ContextBuilder interface {
	BuildManagerContext(ownerID string) *domain.ManagerContext
}

type Service struct {
	cfg          *config.Config
	resolver     connecting.ConnectionResolver
	linkRepo     repository.SmartLinkRepository
	campaignRepo repository.CampaignRepository
	creativeRepo repository.CreativeRepository
	clickRepo    repository.ClickEventRepository
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	resolver connecting.ConnectionResolver,
	linkRepo repository.SmartLinkRepository,
	campaignRepo repository.CampaignRepository,
	creativeRepo repository.CreativeRepository,
	clickRepo repository.ClickEventRepository,
) ContextBuilder {
	return &Service{
		cfg:          cfg,
		resolver:     resolver,
		linkRepo:     linkRepo,
		campaignRepo: campaignRepo,
		creativeRepo: creativeRepo,
		clickRepo:    clickRepo,
		now:          time.Now,
	}
}

// BuildManagerContext executa as sub-leituras em paralelo, cada uma com
// isolamento de falha: leitura que falhar entra em Errors e o campo
// correspondente fica com a coleção vazia. O contexto sempre é retornado.
// Nenhum cache aqui — política de frescor é responsabilidade do chamador.
func (s *Service) BuildManagerContext(ownerID string) *domain.ManagerContext {
	now := s.now()
	windowDays := s.cfg.Aggregation.WindowDays
	if windowDays <= 0 {
		windowDays = 7
	}
	windowStart := now.AddDate(0, 0, -windowDays)

	mctx := &domain.ManagerContext{
		OwnerID:           ownerID,
		SmartLinks:        []*domain.SmartLink{},
		Campaigns:         []*domain.CampaignSummary{},
		UploadedCreatives: []*domain.CreativeRef{},
		TrackingSignals: domain.TrackingSignals{
			WindowStart: windowStart,
			WindowEnd:   now,
		},
		Errors:      []string{},
		GeneratedAt: now,
	}

	var mutex sync.Mutex
	appendError := func(msg string, err error) {
		logrus.WithError(err).WithField("owner_id", ownerID).Warn("aggregating: " + msg)
		mutex.Lock()
		mctx.Errors = append(mctx.Errors, msg)
		mutex.Unlock()
	}

	wg := sync.WaitGroup{}
	wg.Add(5)

	// O resolver nunca falha; roda em paralelo com as demais leituras.
	go func() {
		defer wg.Done()
		mctx.Connection = s.resolver.ResolveConnectionStatus(ownerID)
	}()

	go func() {
		defer wg.Done()
		links, err := s.linkRepo.ListByOwner(ownerID)
		if err != nil {
			appendError("falha ao ler smart links", err)
			return
		}
		if links != nil {
			mctx.SmartLinks = links
		}
	}()

	go func() {
		defer wg.Done()
		campaigns, err := s.campaignRepo.ListByOwner(ownerID, nil)
		if err != nil {
			appendError("falha ao ler campanhas", err)
			return
		}
		if campaigns != nil {
			mctx.Campaigns = campaigns
		}
	}()

	go func() {
		defer wg.Done()
		creatives, err := s.creativeRepo.ListByOwner(ownerID)
		if err != nil {
			appendError("falha ao ler criativos", err)
			return
		}
		if creatives != nil {
			mctx.UploadedCreatives = creatives
		}
	}()

	go func() {
		defer wg.Done()
		stats, err := s.clickRepo.StatsForOwner(ownerID, windowStart, now)
		if err != nil || stats == nil {
			appendError("falha ao agregar histórico de cliques", err)
			return
		}
		mctx.TrackingSignals = domain.TrackingSignals{
			TotalClicks:    stats.TotalClicks,
			PlatformClicks: stats.PlatformClicks,
			OneClickRate:   stats.OneClickRate(),
			WindowStart:    stats.WindowStart,
			WindowEnd:      stats.WindowEnd,
		}
	}()

	wg.Wait()

	return mctx
}
