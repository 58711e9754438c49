package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"taskdeck/internal/model"
)

func (s Store) CreateProject(ctx context.Context, p *model.Project) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("project name is required")
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	taken, err := nameTaken(ctx, db, "projects", name, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}

	now := time.Now().UTC()
	res, err := db.ExecContext(ctx,
		`INSERT INTO projects(name, color, created_at_unixms) VALUES(?, ?, ?)`,
		name, strings.TrimSpace(p.Color), now.UnixMilli())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	p.Name = name
	p.CreatedAt = now
	return nil
}

func (s Store) GetProject(ctx context.Context, id int64) (model.Project, error) {
	db, err := s.open(ctx)
	if err != nil {
		return model.Project{}, err
	}
	defer db.Close()

	var (
		p         model.Project
		createdMs int64
	)
	err = db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at_unixms FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Color, &createdMs)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, ErrNotFound
	}
	if err != nil {
		return model.Project{}, err
	}
	p.CreatedAt = time.UnixMilli(createdMs).UTC()
	return p, nil
}

func (s Store) ListProjects(ctx context.Context) ([]model.Project, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, color, created_at_unixms FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var (
			p         model.Project
			createdMs int64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &createdMs); err != nil {
			return nil, err
		}
		p.CreatedAt = time.UnixMilli(createdMs).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s Store) UpdateProject(ctx context.Context, p model.Project) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("project name is required")
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	taken, err := nameTaken(ctx, db, "projects", name, p.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}

	res, err := db.ExecContext(ctx,
		`UPDATE projects SET name = ?, color = ? WHERE id = ?`,
		name, strings.TrimSpace(p.Color), p.ID)
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

// DeleteProject removes the project and clears (does not cascade) any task
// references to it. Both run in one transaction.
func (s Store) DeleteProject(ctx context.Context, id int64) error {
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
		`UPDATE tasks SET project_id = NULL WHERE project_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
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

// nameTaken reports whether another row in table already uses name.
// excludeID skips the row being updated (0 for creates).
func nameTaken(ctx context.Context, db *sql.DB, table, name string, excludeID int64) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM `+table+` WHERE name = ? AND id != ?`, name, excludeID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
