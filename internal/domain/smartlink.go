package domain

import "time"

type SmartLinkKind string

const (
	SmartLinkKindSmart    SmartLinkKind = "smart"
	SmartLinkKindOneClick SmartLinkKind = "one_click"
)

// SmartLink é o resumo de um smart link ou one-click link do artista.
// Os cliques desses links formam os sinais primários do Score Engine.
type SmartLink struct {
	ID         string        `json:"id"`
	OwnerID    string        `json:"owner_id"`
	Kind       SmartLinkKind `json:"kind"`
	Slug       string        `json:"slug"`
	Title      string        `json:"title"`
	TargetURL  string        `json:"target_url"`
	ClickCount int           `json:"click_count"`
	CreatedAt  time.Time     `json:"created_at"`
}
