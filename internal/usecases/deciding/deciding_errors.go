package deciding

import "errors"

// Erros específicos do motor de decisão
var (
	ErrCampaignNotFound = errors.New("campanha inexistente ou não pertencente ao artista")
	ErrNoScoreAvailable = errors.New("campanha ainda não possui score calculado")
)
