package scoring

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch"
	streamwatchmocks "github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch/mocks"
	"github.com/ghosteone/manager-api/infrastructure/repository/mocks"
	"github.com/ghosteone/manager-api/internal/config"
	"github.com/ghosteone/manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type scoringMocks struct {
	campaignRepo *mocks.MockCampaignRepository
	linkRepo     *mocks.MockSmartLinkRepository
	creativeRepo *mocks.MockCreativeRepository
	clickRepo    *mocks.MockClickEventRepository
	scoreRepo    *mocks.MockScoreRepository
	liftFetcher  *streamwatchmocks.MockLiftFetcher
}

func newScoringService(ctrl *gomock.Controller, now time.Time) (*Service, scoringMocks) {
	m := scoringMocks{
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		linkRepo:     mocks.NewMockSmartLinkRepository(ctrl),
		creativeRepo: mocks.NewMockCreativeRepository(ctrl),
		clickRepo:    mocks.NewMockClickEventRepository(ctrl),
		scoreRepo:    mocks.NewMockScoreRepository(ctrl),
		liftFetcher:  streamwatchmocks.NewMockLiftFetcher(ctrl),
	}

	service := &Service{
		cfg: &config.Config{
			Scoring: config.Scoring{
				DefaultWindowHours: 168,
				MaxWindowHours:     720,
			},
		},
		campaignRepo: m.campaignRepo,
		linkRepo:     m.linkRepo,
		creativeRepo: m.creativeRepo,
		clickRepo:    m.clickRepo,
		scoreRepo:    m.scoreRepo,
		liftFetcher:  m.liftFetcher,
		now:          func() time.Time { return now },
	}

	return service, m
}

func healthyStats(windowStart, windowEnd time.Time) *domain.ClickStats {
	return &domain.ClickStats{
		TotalClicks:    375,
		PlatformClicks: 300,
		OneClicks:      225,
		WindowStart:    windowStart,
		WindowEnd:      windowEnd,
		DailyClicks:    []int{50, 55},
	}
}

func TestComputeScore_CampanhaSaudavel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-168 * time.Hour)
	service, m := newScoringService(ctrl, now)

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").
		Return(&domain.CampaignSummary{ID: "cmp-1", OwnerID: "owner-1", SpendWindow: 50}, nil)
	m.clickRepo.EXPECT().StatsForEntity("owner-1", domain.EntityTypeCampaign, "cmp-1", windowStart, now).
		Return(healthyStats(windowStart, now), nil)
	m.liftFetcher.EXPECT().FetchLift("owner-1", "cmp-1", windowStart, now).Return(0.35, nil)

	var inserted *domain.Score
	m.scoreRepo.EXPECT().Insert(gomock.Any()).DoAndReturn(func(s *domain.Score) error {
		inserted = s
		return nil
	})
	m.campaignRepo.EXPECT().UpdateLatestScore("cmp-1", 75, domain.GradePass, now).Return(nil)

	score, err := service.ComputeScore("owner-1", domain.EntityTypeCampaign, "cmp-1", 0)

	assert.NoError(t, err)
	assert.NotNil(t, score)

	// intent 68 (0.4*80 + 0.3*60 + 0.3*60), response 90 (lift 0.35),
	// estabilidade default 70 → round(34 + 27 + 14) = 75.
	assert.Equal(t, 75, score.Score)
	assert.Equal(t, domain.GradePass, score.Grade)
	assert.Equal(t, domain.ConfidenceHigh, score.Confidence)
	assert.Equal(t, windowStart, score.WindowStart)
	assert.Equal(t, now, score.WindowEnd)
	assert.NotEmpty(t, score.ID)
	assert.Equal(t, score, inserted)
}

func TestComputeScore_TerceirosIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-168 * time.Hour)
	service, m := newScoringService(ctrl, now)

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").
		Return(&domain.CampaignSummary{ID: "cmp-1", OwnerID: "owner-1", SpendWindow: 50}, nil)
	m.clickRepo.EXPECT().StatsForEntity("owner-1", domain.EntityTypeCampaign, "cmp-1", windowStart, now).
		Return(healthyStats(windowStart, now), nil)
	m.liftFetcher.EXPECT().FetchLift("owner-1", "cmp-1", windowStart, now).
		Return(0.0, streamwatch.ErrUnavailable)

	m.scoreRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.campaignRepo.EXPECT().UpdateLatestScore("cmp-1", gomock.Any(), gomock.Any(), now).Return(nil)

	score, err := service.ComputeScore("owner-1", domain.EntityTypeCampaign, "cmp-1", 0)

	assert.NoError(t, err)
	assert.NotNil(t, score)

	// Fonte fora do ar degrada: contribuição neutra (50) no lugar do lift,
	// confiança nunca chega a alta e o motivo aparece no vocabulário.
	// round(34 + 15 + 14) = 63.
	assert.Equal(t, 63, score.Score)
	assert.NotEqual(t, domain.ConfidenceHigh, score.Confidence)
	assert.Contains(t, score.Reasons, reasonNoThirdParty)
}

func TestComputeScore_FalhaNosSinaisPrimariosDegrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-168 * time.Hour)
	service, m := newScoringService(ctrl, now)

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").
		Return(&domain.CampaignSummary{ID: "cmp-1", OwnerID: "owner-1", SpendWindow: 50}, nil)
	m.clickRepo.EXPECT().StatsForEntity("owner-1", domain.EntityTypeCampaign, "cmp-1", windowStart, now).
		Return(nil, errors.New("timeout"))
	m.liftFetcher.EXPECT().FetchLift("owner-1", "cmp-1", windowStart, now).Return(0.35, nil)

	m.scoreRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.campaignRepo.EXPECT().UpdateLatestScore("cmp-1", gomock.Any(), gomock.Any(), now).Return(nil)

	score, err := service.ComputeScore("owner-1", domain.EntityTypeCampaign, "cmp-1", 0)

	// Sinais primários fora do ar não derrubam o cálculo; sem volume a
	// confiança cai para baixa.
	assert.NoError(t, err)
	assert.NotNil(t, score)
	assert.Equal(t, domain.ConfidenceLow, score.Confidence)
	assert.Contains(t, score.Reasons, reasonLowVolume)
}

func TestComputeScore_EntidadeDeOutroDono(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newScoringService(ctrl, now)

	// Filtro por dono no repositório: campanha alheia vem como nil.
	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-alheia", "owner-1").Return(nil, nil)

	score, err := service.ComputeScore("owner-1", domain.EntityTypeCampaign, "cmp-alheia", 0)

	assert.Nil(t, score)
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

func TestComputeScore_ArtistaSoPontuaASiMesmo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := newScoringService(ctrl, now)

	score, err := service.ComputeScore("owner-1", domain.EntityTypeArtist, "owner-2", 0)

	assert.Nil(t, score)
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

func TestComputeScore_TipoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := newScoringService(ctrl, now)

	score, err := service.ComputeScore("owner-1", domain.EntityType("playlist"), "x", 0)

	assert.Nil(t, score)
	assert.ErrorIs(t, err, ErrInvalidEntityType)
}

func TestComputeScore_JanelaAcimaDoMaximo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := newScoringService(ctrl, now)

	score, err := service.ComputeScore("owner-1", domain.EntityTypeCampaign, "cmp-1", 10000)

	assert.Nil(t, score)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestComputeScore_FalhaAoPersistir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-168 * time.Hour)
	service, m := newScoringService(ctrl, now)

	m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").
		Return(&domain.CampaignSummary{ID: "cmp-1", OwnerID: "owner-1", SpendWindow: 50}, nil)
	m.clickRepo.EXPECT().StatsForEntity("owner-1", domain.EntityTypeCampaign, "cmp-1", windowStart, now).
		Return(healthyStats(windowStart, now), nil)
	m.liftFetcher.EXPECT().FetchLift("owner-1", "cmp-1", windowStart, now).Return(0.35, nil)
	m.scoreRepo.EXPECT().Insert(gomock.Any()).Return(errors.New("disk full"))

	score, err := service.ComputeScore("owner-1", domain.EntityTypeCampaign, "cmp-1", 0)

	assert.Nil(t, score)

	var scoreErr *ScoreError
	if assert.ErrorAs(t, err, &scoreErr) {
		assert.Equal(t, "SRV_002", scoreErr.Code)
	}
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestComputeScore_LinkNaoAtualizaCacheDeCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-168 * time.Hour)
	service, m := newScoringService(ctrl, now)

	m.linkRepo.EXPECT().GetByIDForOwner("lnk-1", "owner-1").
		Return(&domain.SmartLink{ID: "lnk-1", OwnerID: "owner-1"}, nil)
	m.clickRepo.EXPECT().StatsForEntity("owner-1", domain.EntityTypeLink, "lnk-1", windowStart, now).
		Return(healthyStats(windowStart, now), nil)
	m.liftFetcher.EXPECT().FetchLift("owner-1", "lnk-1", windowStart, now).Return(0.10, nil)
	m.scoreRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	// Nenhuma expectativa em UpdateLatestScore: o cache é só de campanha.

	score, err := service.ComputeScore("owner-1", domain.EntityTypeLink, "lnk-1", 0)

	assert.NoError(t, err)
	assert.NotNil(t, score)
	assert.Equal(t, domain.EntityTypeLink, score.EntityType)
}

// Propriedade: qualquer combinação de entradas produz score em [1,100] com
// grade consistente.
func TestComputeScore_SempreDentroDaFaixa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-168 * time.Hour)
	service, m := newScoringService(ctrl, now)

	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		total := rng.Intn(5000)
		platform := 0
		if total > 0 {
			platform = rng.Intn(total + 1)
		}
		oneClicks := 0
		if platform > 0 {
			oneClicks = rng.Intn(platform + 1)
		}

		stats := &domain.ClickStats{
			TotalClicks:    total,
			PlatformClicks: platform,
			OneClicks:      oneClicks,
			WindowStart:    windowStart,
			WindowEnd:      now,
			DailyClicks:    []int{rng.Intn(200), rng.Intn(200), rng.Intn(200), rng.Intn(200)},
		}
		lift := rng.Float64()*3 - 1.5

		m.campaignRepo.EXPECT().GetByIDForOwner("cmp-1", "owner-1").
			Return(&domain.CampaignSummary{ID: "cmp-1", OwnerID: "owner-1", SpendWindow: rng.Float64() * 500}, nil)
		m.clickRepo.EXPECT().StatsForEntity("owner-1", domain.EntityTypeCampaign, "cmp-1", windowStart, now).
			Return(stats, nil)
		m.liftFetcher.EXPECT().FetchLift("owner-1", "cmp-1", windowStart, now).Return(lift, nil)
		m.scoreRepo.EXPECT().Insert(gomock.Any()).Return(nil)
		m.campaignRepo.EXPECT().UpdateLatestScore("cmp-1", gomock.Any(), gomock.Any(), now).Return(nil)

		score, err := service.ComputeScore("owner-1", domain.EntityTypeCampaign, "cmp-1", 0)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, score.Score, 1)
		assert.LessOrEqual(t, score.Score, 100)
		assert.Equal(t, domain.GradeForScore(score.Score), score.Grade)
	}
}

func TestLatestScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scoreRepo := mocks.NewMockScoreRepository(ctrl)
	service := NewReadService(scoreRepo)

	expected := &domain.Score{ID: "scr-1", Score: 75, Grade: domain.GradePass}
	scoreRepo.EXPECT().GetLatestByEntity("owner-1", domain.EntityTypeCampaign, "cmp-1").Return(expected, nil)

	score, err := service.LatestScore("owner-1", domain.EntityTypeCampaign, "cmp-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, score)
}

func TestLatestScore_NuncaPontuada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scoreRepo := mocks.NewMockScoreRepository(ctrl)
	service := NewReadService(scoreRepo)

	scoreRepo.EXPECT().GetLatestByEntity("owner-1", domain.EntityTypeCampaign, "cmp-1").Return(nil, nil)

	score, err := service.LatestScore("owner-1", domain.EntityTypeCampaign, "cmp-1")

	// Nunca pontuada não é erro: o handler decide o que responder.
	assert.NoError(t, err)
	assert.Nil(t, score)
}

func TestLatestScore_TipoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scoreRepo := mocks.NewMockScoreRepository(ctrl)
	service := NewReadService(scoreRepo)

	score, err := service.LatestScore("owner-1", domain.EntityType("playlist"), "x")

	assert.Nil(t, score)
	assert.ErrorIs(t, err, ErrInvalidEntityType)
}
