package streamwatch

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch/statsclient"
	"github.com/ghosteone/manager-api/internal/config"
)

// ErrUnavailable sinaliza que a fonte de analytics não respondeu a tempo
// ou respondeu algo inutilizável. O chamador prossegue com contribuição
// neutra e confiança limitada — nunca propaga como falha do pipeline.
var ErrUnavailable = errors.New("fonte de analytics de streaming indisponível")

// LiftFetcher é a leitura efêmera de analytics de terceiros.
// O retorno é SOMENTE o percentual de lift (fração: 0.35 = +35%).
type LiftFetcher interface {
	FetchLift(ownerID, entityID string, windowStart, windowEnd time.Time) (float64, error)
}

type StreamWatchIntegrator struct {
	cfg    *config.Config
	Client statsclient.Client
}

func New(cfg *config.Config, client statsclient.Client) *StreamWatchIntegrator {
	return &StreamWatchIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchLift lê baseline e janela da fonte externa e reduz tudo a um
// percentual de lift dentro deste bloco. Os valores brutos não saem daqui:
// nada é persistido, nada é logado com números — por construção, não por
// convenção.
func (s *StreamWatchIntegrator) FetchLift(ownerID, entityID string, windowStart, windowEnd time.Time) (float64, error) {
	counts, err := s.Client.GetStreamCounts(statsclient.StreamCountParams{
		OwnerID:     ownerID,
		EntityID:    entityID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})
	if err != nil {
		// Log sem valores: o erro de transporte não carrega métricas.
		logrus.WithFields(logrus.Fields{
			"owner_id":  ownerID,
			"entity_id": entityID,
		}).Warn("streamwatch: leitura efêmera indisponível")
		return 0, ErrUnavailable
	}

	if counts == nil || counts.BaselineCount <= 0 {
		// Sem baseline não há como medir lift.
		return 0, ErrUnavailable
	}

	lift := (counts.WindowCount - counts.BaselineCount) / counts.BaselineCount

	// counts sai de escopo aqui; apenas o lift sobrevive.
	return lift, nil
}
