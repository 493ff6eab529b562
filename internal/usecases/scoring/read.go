package scoring

import (
	"github.com/pkg/errors"
	"github.com/ghosteone/manager-api/infrastructure/repository"
	"github.com/ghosteone/manager-api/internal/domain"
)

// ReadService expõe o histórico de scores. A consulta já é escopada pelo
// owner_id, então não há como ler score de outro artista por aqui.
type ReadService struct {
	scoreRepo repository.ScoreRepository
}

func NewReadService(scoreRepo repository.ScoreRepository) *ReadService {
	return &ReadService{scoreRepo: scoreRepo}
}

// LatestScore retorna o score mais recente da entidade, ou nil quando a
// entidade nunca foi pontuada.
func (s *ReadService) LatestScore(ownerID string, entityType domain.EntityType, entityID string) (*domain.Score, error) {
	if !entityType.IsValid() {
		return nil, ErrInvalidEntityType
	}

	score, err := s.scoreRepo.GetLatestByEntity(ownerID, entityType, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar último score")
	}

	return score, nil
}
