package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/internal/domain"
)

const decisionLogTable = "decision_log dl"

// DecisionLogRepository é o histórico de operações do gerente: toda
// decisão computada é anexada aqui, já sanitizada (nunca tokens, nunca
// métricas brutas de terceiros). Append-only.
type DecisionLogRepository interface {
	Append(decision *domain.Decision) error
	ListByCampaign(ownerID, campaignID string, limit int) ([]*domain.Decision, error)
}

type decisionLogRepository struct {
	conn *postgres.Connection
}

func NewDecisionLogRepository(conn *postgres.Connection) DecisionLogRepository {
	return &decisionLogRepository{
		conn: conn,
	}
}

func (r *decisionLogRepository) Append(decision *domain.Decision) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("decision_log").
		Columns("id", "campaign_id", "owner_id", "action", "reason", "score_used", "confidence_used", "recommended_budget", "guardrails", "automation_mode", "created_at").
		Values(
			decision.ID,
			decision.CampaignID,
			decision.OwnerID,
			decision.Action,
			decision.Reason,
			decision.ScoreUsed,
			decision.ConfidenceUsed,
			decision.RecommendedBudget,
			pq.Array(decision.Guardrails),
			decision.AutomationMode,
			decision.CreatedAt,
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

func (r *decisionLogRepository) ListByCampaign(ownerID, campaignID string, limit int) ([]*domain.Decision, error) {
	queryBuilder := squirrel.
		Select("dl.id, dl.campaign_id, dl.owner_id, dl.action, dl.reason, dl.score_used, dl.confidence_used, dl.recommended_budget, dl.guardrails, dl.automation_mode, dl.created_at").
		From(decisionLogTable).
		Where(squirrel.Eq{"dl.owner_id": ownerID, "dl.campaign_id": campaignID}).
		OrderBy("dl.created_at DESC").
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
			return []*domain.Decision{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	decisions := make([]*domain.Decision, 0)
	for rows.Next() {
		decision := &domain.Decision{}
		if err := rows.Scan(
			&decision.ID,
			&decision.CampaignID,
			&decision.OwnerID,
			&decision.Action,
			&decision.Reason,
			&decision.ScoreUsed,
			&decision.ConfidenceUsed,
			&decision.RecommendedBudget,
			pq.Array(&decision.Guardrails),
			&decision.AutomationMode,
			&decision.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear decisão: %w", err)
		}
		decisions = append(decisions, decision)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return decisions, nil
}
