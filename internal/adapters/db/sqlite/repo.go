package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Repo is the base embedded by every Squirrel-backed repository.
type Repo struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, SQ: sq.StatementBuilder}
}

// rowScanner covers both *sql.Row and *sql.Rows so scan helpers serve single
// and multi-row queries alike.
type rowScanner interface{ Scan(dest ...any) error }
