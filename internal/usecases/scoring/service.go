// Package scoring calcula o score de performance (1-100) de campanhas,
// ad sets, links, criativos e do artista, combinando sinais primários com
// uma leitura efêmera de analytics de terceiros.
package scoring

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch"
	"github.com/ghosteone/manager-api/infrastructure/repository"
	"github.com/ghosteone/manager-api/internal/config"
	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/pkg/utils"
)

type Scorer interface {
	ComputeScore(ownerID string, entityType domain.EntityType, entityID string, windowHours int) (*domain.Score, error)
}

type Service struct {
	cfg          *config.Config
	campaignRepo repository.CampaignRepository
	linkRepo     repository.SmartLinkRepository
	creativeRepo repository.CreativeRepository
	clickRepo    repository.ClickEventRepository
	scoreRepo    repository.ScoreRepository
	liftFetcher  streamwatch.LiftFetcher
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	campaignRepo repository.CampaignRepository,
	linkRepo repository.SmartLinkRepository,
	creativeRepo repository.CreativeRepository,
	clickRepo repository.ClickEventRepository,
	scoreRepo repository.ScoreRepository,
	liftFetcher streamwatch.LiftFetcher,
) Scorer {
	return &Service{
		cfg:          cfg,
		campaignRepo: campaignRepo,
		linkRepo:     linkRepo,
		creativeRepo: creativeRepo,
		clickRepo:    clickRepo,
		scoreRepo:    scoreRepo,
		liftFetcher:  liftFetcher,
		now:          time.Now,
	}
}

// ComputeScore é a fronteira de autorização do pipeline: entidade que não
// resolve para um registro do artista falha com ErrInvalidEntity. Qualquer
// outra sub-falha degrada (contribuição neutra, confiança limitada) em vez
// de derrubar o cálculo.
func (s *Service) ComputeScore(
	ownerID string,
	entityType domain.EntityType,
	entityID string,
	windowHours int,
) (*domain.Score, error) {
	if !entityType.IsValid() {
		return nil, ErrInvalidEntityType
	}

	if windowHours <= 0 {
		windowHours = s.cfg.Scoring.DefaultWindowHours
	}
	if max := s.cfg.Scoring.MaxWindowHours; max > 0 && windowHours > max {
		return nil, ErrInvalidWindow
	}

	spend, err := s.resolveEntity(ownerID, entityType, entityID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	windowStart := now.Add(-time.Duration(windowHours) * time.Hour)

	// Sinais primários. Falha aqui não derruba o cálculo: segue com
	// stats zeradas, o que naturalmente rebaixa a confiança.
	stats, err := s.clickRepo.StatsForEntity(ownerID, entityType, entityID, windowStart, now)
	if err != nil || stats == nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner_id":  ownerID,
			"entity_id": entityID,
		}).Warn("scoring: falha ao agregar sinais primários; seguindo com dados vazios")
		stats = &domain.ClickStats{WindowStart: windowStart, WindowEnd: now}
	}

	// Leitura efêmera de terceiros. Os valores brutos morrem dentro do
	// integrador; daqui para frente só existe o lift, e nem ele é
	// persistido — somente a contribuição de score sobrevive.
	response := float64(responseScoreNeutral)
	thirdPartyAvailable := false
	if s.liftFetcher != nil {
		lift, liftErr := s.liftFetcher.FetchLift(ownerID, entityID, windowStart, now)
		if liftErr == nil {
			response = responseScoreFromLift(lift)
			thirdPartyAvailable = true
		}
	}

	intent := intentScore(stats.TotalClicks, stats.PlatformClicks, spend, stats.OneClickRate())
	stability := stabilityScoreFromDaily(stats.DailyClicks)

	final := domain.ClampScore(int(math.Round(
		intentWeight*intent + responseWeight*response + stabilityWeight*stability,
	)))

	confidence := deriveConfidence(stats.TotalClicks, stability, thirdPartyAvailable)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do score")
	}

	score := &domain.Score{
		ID:          id,
		OwnerID:     ownerID,
		EntityType:  entityType,
		EntityID:    entityID,
		Score:       final,
		Grade:       domain.GradeForScore(final),
		Confidence:  confidence,
		Reasons:     buildReasons(intent, response, stability, thirdPartyAvailable, stats.TotalClicks),
		WindowStart: windowStart,
		WindowEnd:   now,
		CreatedAt:   now,
	}

	// Persistência append-only do registro final — nenhum intermediário
	// (lift, sub-scores) é gravado.
	if err := s.scoreRepo.Insert(score); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner_id":  ownerID,
			"entity_id": entityID,
		}).Error("scoring: falha ao persistir score")
		return nil, NewScoreError(ErrDatabaseOperation, "SRV_002", entityID, "falha ao persistir score")
	}

	// Cache de último score na campanha: a única escrita deste core em
	// campaigns. Falha aqui não invalida o score já registrado.
	if entityType == domain.EntityTypeCampaign || entityType == domain.EntityTypeAdSet {
		if err := s.campaignRepo.UpdateLatestScore(entityID, final, score.Grade, now); err != nil {
			logrus.WithError(err).WithField("entity_id", entityID).
				Warn("scoring: falha ao atualizar cache de score da campanha")
		}
	}

	return score, nil
}

// resolveEntity valida posse e retorna o spend da janela quando a
// entidade o possui (campanhas e ad sets).
func (s *Service) resolveEntity(ownerID string, entityType domain.EntityType, entityID string) (float64, error) {
	switch entityType {
	case domain.EntityTypeCampaign, domain.EntityTypeAdSet:
		campaign, err := s.campaignRepo.GetByIDForOwner(entityID, ownerID)
		if err != nil {
			return 0, errors.Wrap(err, "erro ao resolver campanha")
		}
		if campaign == nil {
			return 0, ErrInvalidEntity
		}
		return campaign.SpendWindow, nil

	case domain.EntityTypeLink:
		link, err := s.linkRepo.GetByIDForOwner(entityID, ownerID)
		if err != nil {
			return 0, errors.Wrap(err, "erro ao resolver smart link")
		}
		if link == nil {
			return 0, ErrInvalidEntity
		}
		return 0, nil

	case domain.EntityTypeCreative:
		creative, err := s.creativeRepo.GetByIDForOwner(entityID, ownerID)
		if err != nil {
			return 0, errors.Wrap(err, "erro ao resolver criativo")
		}
		if creative == nil {
			return 0, ErrInvalidEntity
		}
		return 0, nil

	case domain.EntityTypeArtist:
		if entityID != ownerID {
			return 0, ErrInvalidEntity
		}
		return 0, nil
	}

	return 0, ErrInvalidEntityType
}

func deriveConfidence(totalClicks int, stability float64, thirdPartyAvailable bool) domain.Confidence {
	if totalClicks < highConfidenceMinClicks || stability < lowConfidenceMaxStability {
		return domain.ConfidenceLow
	}

	if totalClicks >= highConfidenceMinClicks &&
		stability >= highConfidenceMinStability &&
		thirdPartyAvailable {
		return domain.ConfidenceHigh
	}

	return domain.ConfidenceMedium
}
