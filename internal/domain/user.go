package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso. Admin opera o sistema (cron, manutenção); artista é
// o dono de um workspace.
const (
	RoleAdmin  = 1
	RoleArtist = 2
)

type User struct {
	ID           int        `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	RoleID       int        `json:"role_id"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Claims transporta a identidade do usuário no token JWT. OwnerID é o
// workspace do artista: toda rota deste core é escopada por ele.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserRoleID int    `json:"user_role_id"`
	OwnerID    string `json:"owner_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}
