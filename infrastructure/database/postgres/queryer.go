package postgres

import "database/sql"

// Queryer é o subconjunto de *sql.DB que os repositórios consomem.
// As leituras deste core são pontuais e agregadas em banco; fluxo
// transacional passa por RunInTransaction, no Conn.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
