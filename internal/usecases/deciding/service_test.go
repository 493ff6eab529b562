package deciding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ghosteone/manager-api/infrastructure/repository/mocks"
	"github.com/ghosteone/manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type decidingMocks struct {
	campaignRepo    *mocks.MockCampaignRepository
	scoreRepo       *mocks.MockScoreRepository
	decisionLogRepo *mocks.MockDecisionLogRepository
}

func newDecidingService(ctrl *gomock.Controller, now time.Time) (*Service, decidingMocks) {
	m := decidingMocks{
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		scoreRepo:       mocks.NewMockScoreRepository(ctrl),
		decisionLogRepo: mocks.NewMockDecisionLogRepository(ctrl),
	}

	service := &Service{
		campaignRepo:    m.campaignRepo,
		scoreRepo:       m.scoreRepo,
		decisionLogRepo: m.decisionLogRepo,
		now:             func() time.Time { return now },
	}

	return service, m
}

func TestRecommendForCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newDecidingService(ctrl, now)

	campaign := &domain.CampaignSummary{
		ID:             "cmp-1",
		OwnerID:        "owner-1",
		Kind:           domain.EntityTypeCampaign,
		Goal:           domain.CampaignGoalStreams,
		Status:         domain.CampaignStatusActive,
		AutomationMode: domain.AutomationAutonomous,
		DailyBudget:    40,
		MaxDailyBudget: 200,
		CreatedAt:      now.AddDate(0, 0, -10),
	}

	latest := &domain.Score{
		ID:         "scr-1",
		OwnerID:    "owner-1",
		EntityType: domain.EntityTypeCampaign,
		EntityID:   "cmp-1",
		Score:      85,
		Grade:      domain.GradeStrong,
		Confidence: domain.ConfidenceHigh,
	}

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").Return(campaign, nil)
	m.scoreRepo.EXPECT().GetLatestByEntity("owner-1", domain.EntityTypeCampaign, "cmp-1").Return(latest, nil)

	var appended *domain.Decision
	m.decisionLogRepo.EXPECT().Append(gomock.Any()).DoAndReturn(func(d *domain.Decision) error {
		appended = d
		return nil
	})

	decision, err := service.RecommendForCampaign("owner-1", "cmp-1")

	assert.NoError(t, err)
	assert.NotNil(t, decision)
	assert.Equal(t, domain.ActionScaleUp, decision.Action)
	assert.Equal(t, 85, decision.ScoreUsed)
	assert.Equal(t, domain.ConfidenceHigh, decision.ConfidenceUsed)
	assert.NotEmpty(t, decision.ID)
	assert.Equal(t, now, decision.CreatedAt)

	// A decisão retornada é a mesma que foi anexada ao histórico.
	assert.Equal(t, decision, appended)
}

func TestRecommendForCampaign_CampanhaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newDecidingService(ctrl, now)

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-unknown", "owner-1").Return(nil, nil)

	decision, err := service.RecommendForCampaign("owner-1", "cmp-unknown")

	assert.Nil(t, decision)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestRecommendForCampaign_SemScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newDecidingService(ctrl, now)

	campaign := &domain.CampaignSummary{
		ID:      "cmp-1",
		OwnerID: "owner-1",
		Kind:    domain.EntityTypeCampaign,
	}

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").Return(campaign, nil)
	m.scoreRepo.EXPECT().GetLatestByEntity("owner-1", domain.EntityTypeCampaign, "cmp-1").Return(nil, nil)

	decision, err := service.RecommendForCampaign("owner-1", "cmp-1")

	assert.Nil(t, decision)
	assert.ErrorIs(t, err, ErrNoScoreAvailable)
}

func TestRecommendForCampaign_FalhaAoRegistrar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newDecidingService(ctrl, now)

	campaign := &domain.CampaignSummary{
		ID:        "cmp-1",
		OwnerID:   "owner-1",
		Kind:      domain.EntityTypeCampaign,
		CreatedAt: now.AddDate(0, 0, -10),
	}

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").Return(campaign, nil)
	m.scoreRepo.EXPECT().GetLatestByEntity("owner-1", domain.EntityTypeCampaign, "cmp-1").
		Return(&domain.Score{Score: 70, Confidence: domain.ConfidenceMedium}, nil)
	m.decisionLogRepo.EXPECT().Append(gomock.Any()).Return(errors.New("disk full"))

	decision, err := service.RecommendForCampaign("owner-1", "cmp-1")

	// Sem registro no histórico não há decisão: o log é parte do contrato.
	assert.Nil(t, decision)
	assert.Error(t, err)
}

func TestListDecisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newDecidingService(ctrl, now)

	campaign := &domain.CampaignSummary{ID: "cmp-1", OwnerID: "owner-1"}
	expected := []*domain.Decision{
		{ID: "dec-2", CampaignID: "cmp-1", Action: domain.ActionMaintain},
		{ID: "dec-1", CampaignID: "cmp-1", Action: domain.ActionScaleUp},
	}

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").Return(campaign, nil)
	m.decisionLogRepo.EXPECT().ListByCampaign("owner-1", "cmp-1", 20).Return(expected, nil)

	decisions, err := service.ListDecisions("owner-1", "cmp-1", 20)

	assert.NoError(t, err)
	assert.Equal(t, expected, decisions)
}

func TestListDecisions_CampanhaDeOutroDono(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newDecidingService(ctrl, now)

	// GetByIDForOwner já filtra por dono: campanha de outro artista
	// simplesmente não existe para este owner.
	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-2").Return(nil, nil)

	decisions, err := service.ListDecisions("owner-2", "cmp-1", 20)

	assert.Nil(t, decisions)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}
