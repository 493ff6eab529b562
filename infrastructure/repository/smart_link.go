package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/internal/domain"
)

const smartLinksTable = "smart_links sl"

type SmartLinkRepository interface {
	ListByOwner(ownerID string) ([]*domain.SmartLink, error)
	GetByIDForOwner(linkID, ownerID string) (*domain.SmartLink, error)
}

type smartLinkRepository struct {
	conn *postgres.Connection
}

func NewSmartLinkRepository(conn *postgres.Connection) SmartLinkRepository {
	return &smartLinkRepository{
		conn: conn,
	}
}

func (r *smartLinkRepository) ListByOwner(ownerID string) ([]*domain.SmartLink, error) {
	query, args, err := squirrel.
		Select("sl.id, sl.owner_id, sl.kind, sl.slug, sl.title, sl.target_url, sl.click_count, sl.created_at").
		From(smartLinksTable).
		Where(squirrel.Eq{"sl.owner_id": ownerID}).
		OrderBy("sl.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.SmartLink{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	links := make([]*domain.SmartLink, 0)
	for rows.Next() {
		link := &domain.SmartLink{}
		if err := rows.Scan(
			&link.ID,
			&link.OwnerID,
			&link.Kind,
			&link.Slug,
			&link.Title,
			&link.TargetURL,
			&link.ClickCount,
			&link.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear smart link: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return links, nil
}

func (r *smartLinkRepository) GetByIDForOwner(linkID, ownerID string) (*domain.SmartLink, error) {
	query, args, err := squirrel.
		Select("sl.id, sl.owner_id, sl.kind, sl.slug, sl.title, sl.target_url, sl.click_count, sl.created_at").
		From(smartLinksTable).
		Where(squirrel.Eq{"sl.id": linkID, "sl.owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	link := &domain.SmartLink{}
	if err := row.Scan(
		&link.ID,
		&link.OwnerID,
		&link.Kind,
		&link.Slug,
		&link.Title,
		&link.TargetURL,
		&link.ClickCount,
		&link.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear smart link: %w", err)
	}

	return link, nil
}
