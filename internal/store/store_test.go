package store

import (
	"context"
	"errors"
	"testing"

	"taskdeck/internal/model"
)

func TestTaskCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	task := model.Task{
		Title:       "Write report",
		Description: "With **markdown**",
		Status:      model.StatusTodo,
		Priority:    model.PriorityHigh,
		Due:         "2026-09-01",
	}
	if err := s.CreateTask(ctx, &task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != task.Title || got.Description != task.Description {
		t.Fatalf("round trip mismatch: got %q / %q", got.Title, got.Description)
	}
	if got.Status != model.StatusTodo || got.Priority != model.PriorityHigh {
		t.Fatalf("status/priority mismatch: %s / %s", got.Status, got.Priority)
	}
	if got.Due != "2026-09-01" {
		t.Fatalf("due mismatch: %q", got.Due)
	}
	if got.ProjectID != nil || got.TagID != nil {
		t.Fatalf("expected nil refs")
	}

	got.Status = model.StatusDone
	got.Due = ""
	if err := s.UpdateTask(ctx, got); err != nil {
		t.Fatalf("update task: %v", err)
	}
	got2, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got2.Status != model.StatusDone || got2.Due != "" {
		t.Fatalf("update not persisted: %s %q", got2.Status, got2.Due)
	}

	if err := s.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := s.GetTask(ctx, task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTaskOperationsOnMissingIDReturnNotFound(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	if _, err := s.GetTask(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateTask(ctx, model.Task{ID: 42, Title: "x", Status: model.StatusTodo, Priority: model.PriorityLow}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteTask(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestListTasksFiltersCombineWithAND(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	work := model.Project{Name: "Work"}
	if err := s.CreateProject(ctx, &work); err != nil {
		t.Fatalf("create project: %v", err)
	}
	urgent := model.Tag{Name: "urgent"}
	if err := s.CreateTag(ctx, &urgent); err != nil {
		t.Fatalf("create tag: %v", err)
	}

	mk := func(title string, st model.Status, projectID, tagID *int64) {
		task := model.Task{Title: title, Status: st, Priority: model.PriorityMedium, ProjectID: projectID, TagID: tagID}
		if err := s.CreateTask(ctx, &task); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}
	mk("a", model.StatusTodo, &work.ID, &urgent.ID)
	mk("b", model.StatusTodo, &work.ID, nil)
	mk("c", model.StatusDone, &work.ID, &urgent.ID)
	mk("d", model.StatusTodo, nil, &urgent.ID)

	todo := model.StatusTodo
	got, err := s.ListTasks(ctx, TaskFilter{Status: &todo, ProjectID: &work.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("status+project: expected 2 tasks, got %d", len(got))
	}

	got, err = s.ListTasks(ctx, TaskFilter{Status: &todo, ProjectID: &work.ID, TagID: &urgent.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("all three predicates: expected only task a, got %+v", got)
	}

	got, err = s.ListTasks(ctx, TaskFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("no filter: expected 4 tasks, got %d", len(got))
	}
}

func TestProjectNamesAreUnique(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	a := model.Project{Name: "Work"}
	if err := s.CreateProject(ctx, &a); err != nil {
		t.Fatalf("create: %v", err)
	}
	b := model.Project{Name: "Work"}
	if err := s.CreateProject(ctx, &b); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("duplicate create: expected ErrNameTaken, got %v", err)
	}

	c := model.Project{Name: "Home"}
	if err := s.CreateProject(ctx, &c); err != nil {
		t.Fatalf("create: %v", err)
	}
	c.Name = "Work"
	if err := s.UpdateProject(ctx, c); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("rename onto taken name: expected ErrNameTaken, got %v", err)
	}

	// Renaming to its own current name is not a collision.
	a.Color = "#336699"
	if err := s.UpdateProject(ctx, a); err != nil {
		t.Fatalf("self update: %v", err)
	}
}

func TestDeleteProjectClearsTaskReferences(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	p := model.Project{Name: "Work"}
	if err := s.CreateProject(ctx, &p); err != nil {
		t.Fatalf("create project: %v", err)
	}
	task := model.Task{Title: "a", Status: model.StatusTodo, Priority: model.PriorityLow, ProjectID: &p.ID}
	if err := s.CreateTask(ctx, &task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("task must survive project delete: %v", err)
	}
	if got.ProjectID != nil {
		t.Fatalf("expected project reference cleared, got %d", *got.ProjectID)
	}
}

func TestDeleteTagClearsTaskReferences(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	tag := model.Tag{Name: "urgent"}
	if err := s.CreateTag(ctx, &tag); err != nil {
		t.Fatalf("create tag: %v", err)
	}
	task := model.Task{Title: "a", Status: model.StatusTodo, Priority: model.PriorityLow, TagID: &tag.ID}
	if err := s.CreateTask(ctx, &task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := s.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("task must survive tag delete: %v", err)
	}
	if got.TagID != nil {
		t.Fatalf("expected tag reference cleared, got %d", *got.TagID)
	}
}

func TestConfigRoundTripAndDefaults(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	// Missing file yields the zero config with defaulted keys.
	cfg, err := s.LoadConfig()
	if err != nil {
		t.Fatalf("load missing config: %v", err)
	}
	if cfg.FormNextKey() != "tab" || cfg.FormPrevKey() != "shift+tab" {
		t.Fatalf("expected default keys, got %q / %q", cfg.FormNextKey(), cfg.FormPrevKey())
	}

	cfg.TUI = &TUIConfig{Theme: "dark", NextFieldKey: "ctrl+n", PrevFieldKey: "ctrl+p"}
	if err := s.SaveConfig(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	got, err := s.LoadConfig()
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if got.TUI == nil || got.TUI.Theme != "dark" {
		t.Fatalf("theme not persisted: %+v", got.TUI)
	}
	if got.FormNextKey() != "ctrl+n" || got.FormPrevKey() != "ctrl+p" {
		t.Fatalf("configured keys not honored: %q / %q", got.FormNextKey(), got.FormPrevKey())
	}
}
