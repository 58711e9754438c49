package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"taskdeck/internal/model"
)

// TaskFilter holds optional predicates for ListTasks. Set fields are combined
// with logical AND; nil fields match everything.
type TaskFilter struct {
	Status    *model.Status
	ProjectID *int64
	TagID     *int64
}

func (s Store) CreateTask(ctx context.Context, t *model.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title is required")
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now().UTC()
	res, err := db.ExecContext(ctx, `INSERT INTO tasks(
		title, description, status, priority, due_date, project_id, tag_id,
		created_at_unixms, updated_at_unixms
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(t.Title), t.Description, string(t.Status), string(t.Priority),
		strings.TrimSpace(t.Due), nullableID(t.ProjectID), nullableID(t.TagID),
		now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}

func (s Store) GetTask(ctx context.Context, id int64) (model.Task, error) {
	db, err := s.open(ctx)
	if err != nil {
		return model.Task{}, err
	}
	defer db.Close()

	row := db.QueryRowContext(ctx, `SELECT id, title, description, status, priority, due_date,
		project_id, tag_id, created_at_unixms, updated_at_unixms
		FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	return t, err
}

func (s Store) ListTasks(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, title, description, status, priority, due_date,
		project_id, tag_id, created_at_unixms, updated_at_unixms
		FROM tasks`
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, string(*f.Status))
	}
	if f.ProjectID != nil {
		conds = append(conds, "project_id = ?")
		args = append(args, *f.ProjectID)
	}
	if f.TagID != nil {
		conds = append(conds, "tag_id = ?")
		args = append(args, *f.TagID)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id"

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s Store) UpdateTask(ctx context.Context, t model.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title is required")
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now().UTC()
	res, err := db.ExecContext(ctx, `UPDATE tasks SET
		title = ?, description = ?, status = ?, priority = ?, due_date = ?,
		project_id = ?, tag_id = ?, updated_at_unixms = ?
		WHERE id = ?`,
		strings.TrimSpace(t.Title), t.Description, string(t.Status), string(t.Priority),
		strings.TrimSpace(t.Due), nullableID(t.ProjectID), nullableID(t.TagID),
		now.UnixMilli(), t.ID,
	)
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

func (s Store) DeleteTask(ctx context.Context, id int64) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(r rowScanner) (model.Task, error) {
	var (
		t                model.Task
		status, priority string
		projectID, tagID sql.NullInt64
		createdMs        int64
		updatedMs        int64
	)
	if err := r.Scan(&t.ID, &t.Title, &t.Description, &status, &priority, &t.Due,
		&projectID, &tagID, &createdMs, &updatedMs); err != nil {
		return model.Task{}, err
	}
	t.Status = model.Status(status)
	t.Priority = model.Priority(priority)
	t.ProjectID = idFromNull(projectID)
	t.TagID = idFromNull(tagID)
	t.CreatedAt = time.UnixMilli(createdMs).UTC()
	t.UpdatedAt = time.UnixMilli(updatedMs).UTC()
	return t, nil
}
