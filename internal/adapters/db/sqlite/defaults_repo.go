package sqlite

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

type DefaultsRepo struct{ *Repo }

func NewDefaultsRepo(db *sql.DB) *DefaultsRepo { return &DefaultsRepo{NewRepo(db)} }

func (r *DefaultsRepo) Global(ctx context.Context) (map[domain.SectionKind]string, error) {
	q := r.SQ.Select("kind", "text").From("global_defaults")
	return r.scanMap(ctx, q)
}

func (r *DefaultsRepo) SetGlobal(ctx context.Context, kind domain.SectionKind, text string) error {
	q := r.SQ.Insert("global_defaults").Columns("kind", "text").Values(kind, text).
		Suffix("ON CONFLICT(kind) DO UPDATE SET text = excluded.text")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *DefaultsRepo) DeleteGlobal(ctx context.Context, kind domain.SectionKind) error {
	q := r.SQ.Delete("global_defaults").Where(sq.Eq{"kind": kind})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *DefaultsRepo) ForCharacter(ctx context.Context, characterID int64) (map[domain.SectionKind]string, error) {
	q := r.SQ.Select("kind", "text").From("character_defaults").Where(sq.Eq{"character_id": characterID})
	return r.scanMap(ctx, q)
}

func (r *DefaultsRepo) SetForCharacter(ctx context.Context, characterID int64, kind domain.SectionKind, text string) error {
	q := r.SQ.Insert("character_defaults").Columns("character_id", "kind", "text").
		Values(characterID, kind, text).
		Suffix("ON CONFLICT(character_id, kind) DO UPDATE SET text = excluded.text")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *DefaultsRepo) DeleteForCharacter(ctx context.Context, characterID int64, kind domain.SectionKind) error {
	q := r.SQ.Delete("character_defaults").Where(sq.Eq{"character_id": characterID, "kind": kind})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *DefaultsRepo) scanMap(ctx context.Context, q sq.SelectBuilder) (map[domain.SectionKind]string, error) {
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[domain.SectionKind]string)
	for rows.Next() {
		var kind domain.SectionKind
		var text string
		if err := rows.Scan(&kind, &text); err != nil {
			return nil, err
		}
		out[kind] = text
	}
	return out, rows.Err()
}
