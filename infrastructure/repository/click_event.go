package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/internal/domain"
)

const clickEventsTable = "click_events ce"

// ClickEventRepository lê o histórico de cliques dos smart links.
// Sempre agregado em banco: o volume de eventos individuais não deve
// transitar pela aplicação.
type ClickEventRepository interface {
	StatsForOwner(ownerID string, start, end time.Time) (*domain.ClickStats, error)
	StatsForEntity(ownerID string, entityType domain.EntityType, entityID string, start, end time.Time) (*domain.ClickStats, error)
}

type clickEventRepository struct {
	conn *postgres.Connection
}

func NewClickEventRepository(conn *postgres.Connection) ClickEventRepository {
	return &clickEventRepository{
		conn: conn,
	}
}

// StatsForOwner agrega os cliques de todos os links do artista na janela.
func (r *clickEventRepository) StatsForOwner(ownerID string, start, end time.Time) (*domain.ClickStats, error) {
	where := squirrel.Eq{"ce.owner_id": ownerID}
	return r.stats(where, start, end)
}

// StatsForEntity agrega os cliques atribuídos a uma entidade específica.
// Para entityType=artist a agregação é a mesma de StatsForOwner.
func (r *clickEventRepository) StatsForEntity(
	ownerID string,
	entityType domain.EntityType,
	entityID string,
	start, end time.Time,
) (*domain.ClickStats, error) {
	if entityType == domain.EntityTypeArtist {
		return r.StatsForOwner(ownerID, start, end)
	}

	where := squirrel.Eq{
		"ce.owner_id":    ownerID,
		"ce.entity_type": string(entityType),
		"ce.entity_id":   entityID,
	}
	return r.stats(where, start, end)
}

func (r *clickEventRepository) stats(where squirrel.Eq, start, end time.Time) (*domain.ClickStats, error) {
	query, args, err := squirrel.
		Select(
			"count(*)",
			"count(*) FILTER (WHERE ce.platform IS NOT NULL AND ce.platform <> '')",
			"count(*) FILTER (WHERE ce.one_click)",
		).
		From(clickEventsTable).
		Where(where).
		Where(squirrel.GtOrEq{"ce.clicked_at": start}).
		Where(squirrel.Lt{"ce.clicked_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stats := &domain.ClickStats{
		WindowStart: start,
		WindowEnd:   end,
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&stats.TotalClicks, &stats.PlatformClicks, &stats.OneClicks); err != nil {
		if err == sql.ErrNoRows {
			return stats, nil
		}
		return nil, fmt.Errorf("erro ao agregar cliques: %w", err)
	}

	daily, err := r.dailyCounts(where, start, end)
	if err != nil {
		return nil, err
	}
	stats.DailyClicks = daily

	return stats, nil
}

// dailyCounts retorna os totais diários em ordem cronológica, cobrindo
// todos os dias da janela: dia sem clique entra como zero, para que a
// variância medida em cima da série enxergue lacunas de tráfego.
func (r *clickEventRepository) dailyCounts(where squirrel.Eq, start, end time.Time) ([]int, error) {
	query, args, err := squirrel.
		Select("date_trunc('day', ce.clicked_at) AS day", "count(*)").
		From(clickEventsTable).
		Where(where).
		Where(squirrel.GtOrEq{"ce.clicked_at": start}).
		Where(squirrel.Lt{"ce.clicked_at": end}).
		GroupBy("day").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []int{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	countsByDay := make(map[time.Time]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem diária: %w", err)
		}
		countsByDay[day.UTC().Truncate(24*time.Hour)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return fillDailyGaps(countsByDay, start, end), nil
}

// fillDailyGaps materializa a série diária completa da janela a partir do
// agregado do banco, que só devolve linhas para dias com registro.
func fillDailyGaps(countsByDay map[time.Time]int, start, end time.Time) []int {
	counts := make([]int, 0, len(countsByDay))
	for day := start.UTC().Truncate(24 * time.Hour); day.Before(end); day = day.AddDate(0, 0, 1) {
		counts = append(counts, countsByDay[day])
	}
	return counts
}
