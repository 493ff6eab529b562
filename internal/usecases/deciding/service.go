package deciding

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/infrastructure/repository"
	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/pkg/utils"
)

type Decider interface {
	RecommendForCampaign(ownerID, campaignID string) (*domain.Decision, error)
	ListDecisions(ownerID, campaignID string, limit int) ([]*domain.Decision, error)
}

type Service struct {
	campaignRepo    repository.CampaignRepository
	scoreRepo       repository.ScoreRepository
	decisionLogRepo repository.DecisionLogRepository
	now             func() time.Time
}

func NewService(
	campaignRepo repository.CampaignRepository,
	scoreRepo repository.ScoreRepository,
	decisionLogRepo repository.DecisionLogRepository,
) Decider {
	return &Service{
		campaignRepo:    campaignRepo,
		scoreRepo:       scoreRepo,
		decisionLogRepo: decisionLogRepo,
		now:             time.Now,
	}
}

// RecommendForCampaign carrega o estado da campanha e o último score,
// delega ao motor puro e anexa a decisão sanitizada ao histórico de
// operações. A decisão registrada carrega o score por valor.
func (s *Service) RecommendForCampaign(ownerID, campaignID string) (*domain.Decision, error) {
	campaign, err := s.campaignRepo.GetByIDForOwner(campaignID, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	latest, err := s.scoreRepo.GetLatestByEntity(ownerID, campaign.Kind, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar último score")
	}
	if latest == nil {
		return nil, ErrNoScoreAvailable
	}

	now := s.now()
	state := domain.CampaignState{
		CampaignID:     campaign.ID,
		OwnerID:        campaign.OwnerID,
		Goal:           campaign.Goal,
		AutomationMode: campaign.AutomationMode,
		CurrentBudget:  campaign.DailyBudget,
		MaxBudget:      campaign.MaxDailyBudget,
		AgeDays:        campaign.AgeDays(now),
		Known:          true,
	}

	decision := Recommend(state, *latest)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da decisão")
	}
	decision.ID = id
	decision.CreatedAt = now

	if err := s.decisionLogRepo.Append(&decision); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner_id":    ownerID,
			"campaign_id": campaignID,
		}).Error("deciding: falha ao registrar decisão no histórico")
		return nil, errors.Wrap(err, "erro ao registrar decisão")
	}

	return &decision, nil
}

func (s *Service) ListDecisions(ownerID, campaignID string, limit int) ([]*domain.Decision, error) {
	campaign, err := s.campaignRepo.GetByIDForOwner(campaignID, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	decisions, err := s.decisionLogRepo.ListByCampaign(ownerID, campaignID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar decisões")
	}

	return decisions, nil
}
