package scoring

import (
	"errors"
	"fmt"
)

// Erros específicos do cálculo de score
var (
	// ErrInvalidEntity é a única falha dura do motor: a entidade não
	// existe ou não pertence ao chamador. Mascarar isso seria um problema
	// de segurança, não de resiliência — por isso sobe até a borda.
	ErrInvalidEntity = errors.New("entidade inválida ou não pertencente ao artista")

	ErrInvalidEntityType = errors.New("tipo de entidade desconhecido")
	ErrInvalidWindow     = errors.New("janela de tempo inválida")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ScoreError é um erro com contexto adicional para o cálculo de score
type ScoreError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // Entidade envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ScoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ScoreError) Unwrap() error {
	return e.Err
}

func NewScoreError(err error, code string, entityID string, details string) *ScoreError {
	return &ScoreError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}
