package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/internal/domain"
)

const creativesTable = "creatives cr"

type CreativeRepository interface {
	ListByOwner(ownerID string) ([]*domain.CreativeRef, error)
	GetByIDForOwner(creativeID, ownerID string) (*domain.CreativeRef, error)
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

func (r *creativeRepository) ListByOwner(ownerID string) ([]*domain.CreativeRef, error) {
	query, args, err := squirrel.
		Select("cr.id, cr.owner_id, cr.url, cr.media_type, cr.platform_ready, cr.created_at").
		From(creativesTable).
		Where(squirrel.Eq{"cr.owner_id": ownerID}).
		OrderBy("cr.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.CreativeRef{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	creatives := make([]*domain.CreativeRef, 0)
	for rows.Next() {
		creative := &domain.CreativeRef{}
		if err := rows.Scan(
			&creative.ID,
			&creative.OwnerID,
			&creative.URL,
			&creative.MediaType,
			&creative.PlatformReady,
			&creative.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear criativo: %w", err)
		}
		creatives = append(creatives, creative)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creatives, nil
}

func (r *creativeRepository) GetByIDForOwner(creativeID, ownerID string) (*domain.CreativeRef, error) {
	query, args, err := squirrel.
		Select("cr.id, cr.owner_id, cr.url, cr.media_type, cr.platform_ready, cr.created_at").
		From(creativesTable).
		Where(squirrel.Eq{"cr.id": creativeID, "cr.owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	creative := &domain.CreativeRef{}
	if err := row.Scan(
		&creative.ID,
		&creative.OwnerID,
		&creative.URL,
		&creative.MediaType,
		&creative.PlatformReady,
		&creative.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear criativo: %w", err)
	}

	return creative, nil
}
