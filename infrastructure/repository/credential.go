package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/internal/domain"
)

const metaConnectionsTable = "meta_connections mc"

// CredentialRepository é o ÚNICO caminho de leitura do estado de conexão
// com a Meta. UI, IA e motor de decisão passam todos por aqui — nunca
// consultar tabelas legadas paralelas para o mesmo fato (foi fonte
// recorrente de contradições entre telas e respostas da IA).
type CredentialRepository interface {
	GetByOwnerID(ownerID string) (*domain.MetaConnection, error)
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// GetByOwnerID busca a linha canônica de conexão do artista.
// Ausência de linha retorna (nil, nil): "nunca conectou" não é erro.
func (r *credentialRepository) GetByOwnerID(ownerID string) (*domain.MetaConnection, error) {
	query, args, err := squirrel.
		Select("mc.owner_id, mc.access_token, mc.token_expires_at, mc.ad_account_id, mc.page_id, mc.pixel_id, mc.instagram_actor_id").
		From(metaConnectionsTable).
		Where(squirrel.Eq{"mc.owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	conn := &domain.MetaConnection{}
	if err := row.Scan(
		&conn.OwnerID,
		&conn.AccessToken,
		&conn.TokenExpiresAt,
		&conn.AdAccountID,
		&conn.PageID,
		&conn.PixelID,
		&conn.InstagramActorID,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler conexão canônica: %w", err)
	}

	return conn, nil
}
