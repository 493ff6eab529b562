package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/internal/domain"
)

const campaignsTable = "campaigns c"

const campaignColumns = "c.id, c.owner_id, c.parent_id, c.kind, c.name, c.goal, c.status, " +
	"c.automation_mode, c.daily_budget, c.max_daily_budget, c.spend_window, " +
	"c.latest_score, c.latest_grade, c.scored_at, c.created_at"

// CampaignRepository lê campanhas e ad sets. A única escrita permitida a
// este core é o cache de último score — budget e status são alterados
// exclusivamente pelo passo externo de aplicação.
type CampaignRepository interface {
	ListByOwner(ownerID string, statuses []domain.CampaignStatus) ([]*domain.CampaignSummary, error)
	ListActive() ([]*domain.CampaignSummary, error)
	GetByIDForOwner(campaignID, ownerID string) (*domain.CampaignSummary, error)
	UpdateLatestScore(campaignID string, score int, grade domain.Grade, scoredAt time.Time) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListByOwner(ownerID string, statuses []domain.CampaignStatus) ([]*domain.CampaignSummary, error) {
	queryBuilder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.owner_id": ownerID}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.list(query, args)
}

// ListActive retorna as campanhas ativas de todos os artistas.
// Usado apenas pelo agendador de recomputo de scores.
func (r *campaignRepository) ListActive() ([]*domain.CampaignSummary, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.status": domain.CampaignStatusActive, "c.kind": domain.EntityTypeCampaign}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.list(query, args)
}

func (r *campaignRepository) list(query string, args []interface{}) ([]*domain.CampaignSummary, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.CampaignSummary{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.CampaignSummary, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// GetByIDForOwner resolve campanha OU ad set, sempre validando posse.
// É a fronteira de autorização do Score Engine.
func (r *campaignRepository) GetByIDForOwner(campaignID, ownerID string) (*domain.CampaignSummary, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID, "c.owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	campaign, err := scanCampaignRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) UpdateLatestScore(campaignID string, score int, grade domain.Grade, scoredAt time.Time) error {
	if campaignID == "" {
		return errors.New("campaignID é obrigatório")
	}

	query, args, err := squirrel.
		Update("campaigns").
		Set("latest_score", score).
		Set("latest_grade", grade).
		Set("scored_at", scoredAt).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("campanha não encontrada")
	}

	return nil
}

func scanCampaignRow(row *sql.Row) (*domain.CampaignSummary, error) {
	c := &domain.CampaignSummary{}
	if err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.ParentID,
		&c.Kind,
		&c.Name,
		&c.Goal,
		&c.Status,
		&c.AutomationMode,
		&c.DailyBudget,
		&c.MaxDailyBudget,
		&c.SpendWindow,
		&c.LatestScore,
		&c.LatestGrade,
		&c.ScoredAt,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func scanCampaign(rows *sql.Rows) (*domain.CampaignSummary, error) {
	c := &domain.CampaignSummary{}
	if err := rows.Scan(
		&c.ID,
		&c.OwnerID,
		&c.ParentID,
		&c.Kind,
		&c.Name,
		&c.Goal,
		&c.Status,
		&c.AutomationMode,
		&c.DailyBudget,
		&c.MaxDailyBudget,
		&c.SpendWindow,
		&c.LatestScore,
		&c.LatestGrade,
		&c.ScoredAt,
		&c.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}
	return c, nil
}
