package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"taskdeck/internal/model"
)

func (s Store) CreateTag(ctx context.Context, t *model.Tag) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return errors.New("tag name is required")
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	taken, err := nameTaken(ctx, db, "tags", name, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}

	now := time.Now().UTC()
	res, err := db.ExecContext(ctx,
		`INSERT INTO tags(name, color, created_at_unixms) VALUES(?, ?, ?)`,
		name, strings.TrimSpace(t.Color), now.UnixMilli())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	t.Name = name
	t.CreatedAt = now
	return nil
}

func (s Store) GetTag(ctx context.Context, id int64) (model.Tag, error) {
	db, err := s.open(ctx)
	if err != nil {
		return model.Tag{}, err
	}
	defer db.Close()

	var (
		t         model.Tag
		createdMs int64
	)
	err = db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at_unixms FROM tags WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Color, &createdMs)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, ErrNotFound
	}
	if err != nil {
		return model.Tag{}, err
	}
	t.CreatedAt = time.UnixMilli(createdMs).UTC()
	return t, nil
}

func (s Store) ListTags(ctx context.Context) ([]model.Tag, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, color, created_at_unixms FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		var (
			t         model.Tag
			createdMs int64
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &createdMs); err != nil {
			return nil, err
		}
		t.CreatedAt = time.UnixMilli(createdMs).UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s Store) UpdateTag(ctx context.Context, t model.Tag) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return errors.New("tag name is required")
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	taken, err := nameTaken(ctx, db, "tags", name, t.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}

	res, err := db.ExecContext(ctx,
		`UPDATE tags SET name = ?, color = ? WHERE id = ?`,
		name, strings.TrimSpace(t.Color), t.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTag removes the tag and clears any task references to it.
func (s Store) DeleteTag(ctx context.Context, id int64) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE tasks SET tag_id = NULL WHERE tag_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
