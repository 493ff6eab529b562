package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/internal/domain"
)

const scoresTable = "scores s"

// ScoreRepository persiste scores em modelo append-only: um INSERT por
// cálculo, nenhum UPDATE. Recomputar a mesma entidade+janela gera um novo
// registro, nunca um conflito.
type ScoreRepository interface {
	Insert(score *domain.Score) error
	GetLatestByEntity(ownerID string, entityType domain.EntityType, entityID string) (*domain.Score, error)
	ListByEntity(ownerID string, entityType domain.EntityType, entityID string, limit int) ([]*domain.Score, error)
}

type scoreRepository struct {
	conn *postgres.Connection
}

func NewScoreRepository(conn *postgres.Connection) ScoreRepository {
	return &scoreRepository{
		conn: conn,
	}
}

func (r *scoreRepository) Insert(score *domain.Score) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("scores").
		Columns("id", "owner_id", "entity_type", "entity_id", "score", "grade", "confidence", "reasons", "window_start", "window_end", "created_at").
		Values(
			score.ID,
			score.OwnerID,
			score.EntityType,
			score.EntityID,
			score.Score,
			score.Grade,
			score.Confidence,
			pq.Array(score.Reasons),
			score.WindowStart,
			score.WindowEnd,
			score.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *scoreRepository) GetLatestByEntity(ownerID string, entityType domain.EntityType, entityID string) (*domain.Score, error) {
	scores, err := r.ListByEntity(ownerID, entityType, entityID, 1)
	if err != nil {
		return nil, err
	}

	if len(scores) == 0 {
		return nil, nil
	}

	return scores[0], nil
}

func (r *scoreRepository) ListByEntity(ownerID string, entityType domain.EntityType, entityID string, limit int) ([]*domain.Score, error) {
	queryBuilder := squirrel.
		Select("s.id, s.owner_id, s.entity_type, s.entity_id, s.score, s.grade, s.confidence, s.reasons, s.window_start, s.window_end, s.created_at").
		From(scoresTable).
		Where(squirrel.Eq{
			"s.owner_id":    ownerID,
			"s.entity_type": entityType,
			"s.entity_id":   entityID,
		}).
		OrderBy("s.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Score{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	scores := make([]*domain.Score, 0)
	for rows.Next() {
		score := &domain.Score{}
		if err := rows.Scan(
			&score.ID,
			&score.OwnerID,
			&score.EntityType,
			&score.EntityID,
			&score.Score,
			&score.Grade,
			&score.Confidence,
			pq.Array(&score.Reasons),
			&score.WindowStart,
			&score.WindowEnd,
			&score.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear score: %w", err)
		}
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return scores, nil
}
