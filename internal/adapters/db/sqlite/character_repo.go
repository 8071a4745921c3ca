package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

type CharacterRepo struct{ *Repo }

func NewCharacterRepo(db *sql.DB) *CharacterRepo { return &CharacterRepo{NewRepo(db)} }

func (r *CharacterRepo) Create(ctx context.Context, c *domain.Character) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("characters").Columns("name", "bio", "theme_override", "created_at", "updated_at").
		Values(c.Name, c.Bio, c.ThemeOverride, now.Format(time.RFC3339), now.Format(time.RFC3339))
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	c.ID = id
	c.CreatedAt, c.UpdatedAt = now, now
	return nil
}

func (r *CharacterRepo) Get(ctx context.Context, id int64) (*domain.Character, error) {
	q := r.SQ.Select("id", "name", "bio", "theme_override", "created_at", "updated_at").
		From("characters").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	return scanCharacter(r.DB.QueryRowContext(ctx, sqlStr, args...))
}

func (r *CharacterRepo) List(ctx context.Context) ([]*domain.Character, error) {
	q := r.SQ.Select("id", "name", "bio", "theme_override", "created_at", "updated_at").
		From("characters").OrderBy("name COLLATE NOCASE")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Character
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CharacterRepo) Update(ctx context.Context, c *domain.Character) error {
	now := time.Now().UTC()
	q := r.SQ.Update("characters").
		Set("name", c.Name).Set("bio", c.Bio).Set("theme_override", c.ThemeOverride).
		Set("updated_at", now.Format(time.RFC3339)).
		Where(sq.Eq{"id": c.ID})
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

func (r *CharacterRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("characters").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func scanCharacter(row rowScanner) (*domain.Character, error) {
	var c domain.Character
	var created, updated string
	if err := row.Scan(&c.ID, &c.Name, &c.Bio, &c.ThemeOverride, &created, &updated); err != nil {
		return nil, err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, created)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &c, nil
}
