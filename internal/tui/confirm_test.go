package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/store"
)

func TestDeleteTaskConfirmFlow(t *testing.T) {
	m := newSeededModel(t)
	victim := m.tasks[0]

	m = press(t, m, key('d'))
	if m.screen != screenConfirmDelete {
		t.Fatalf("expected confirm-delete, got %s", m.screen)
	}
	if m.confirmFocus != confirmFocusCancel {
		t.Fatalf("focus must start on cancel")
	}
	if m.pendingDelete.id != victim.ID || m.pendingDelete.name != victim.Title {
		t.Fatalf("pending intent mismatch: %+v", m.pendingDelete)
	}

	// Enter with focus on cancel aborts.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenTaskList {
		t.Fatalf("cancel must return to the list, got %s", m.screen)
	}
	if !m.pendingDelete.empty() {
		t.Fatalf("cancel must clear the intent")
	}
	if _, err := m.store.GetTask(m.ctx, victim.ID); err != nil {
		t.Fatalf("cancel must not delete: %v", err)
	}

	// Tab moves focus to confirm, enter deletes.
	m = press(t, m, key('d'), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenTaskList {
		t.Fatalf("expected task-list after delete, got %s", m.screen)
	}
	if _, err := m.store.GetTask(m.ctx, victim.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected task gone, got %v", err)
	}
	if m.notice.kind != noticeSuccess || !strings.Contains(m.notice.text, victim.Title) {
		t.Fatalf("expected success notice naming %q, got %+v", victim.Title, m.notice)
	}
	if len(m.tasks) != 2 {
		t.Fatalf("expected 2 tasks left, got %d", len(m.tasks))
	}
}

func TestDeleteFromDetailClearsCurrentTask(t *testing.T) {
	m := newSeededModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // open detail
	if m.currentTask == nil {
		t.Fatalf("detail must own a task")
	}

	m = press(t, m, key('d'), key('y'))
	if m.currentTask != nil {
		t.Fatalf("confirmed delete must clear the current task")
	}
	if m.screen != screenTaskList {
		t.Fatalf("expected task-list, got %s", m.screen)
	}
	if len(m.navStack) != 0 {
		t.Fatalf("delete must jump, not stack back onto the dead detail screen")
	}
}

func TestDeleteShortcutKeys(t *testing.T) {
	m := newSeededModel(t)

	// n cancels without touching focus.
	m = press(t, m, key('d'), key('n'))
	if m.screen != screenTaskList || !m.pendingDelete.empty() {
		t.Fatalf("n must cancel, got screen=%s pending=%+v", m.screen, m.pendingDelete)
	}

	// esc cancels too.
	m = press(t, m, key('d'), tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenTaskList || !m.pendingDelete.empty() {
		t.Fatalf("esc must cancel, got screen=%s", m.screen)
	}

	before := len(m.tasks)
	m = press(t, m, key('d'), key('y'))
	if len(m.tasks) != before-1 {
		t.Fatalf("y must delete regardless of focus, got %d tasks", len(m.tasks))
	}
}

func TestDeleteProjectKeepsTasks(t *testing.T) {
	m := newSeededModel(t)
	taskCount := len(m.tasks)

	m = press(t, m, key('p'), key('d'), key('y'))
	if m.screen != screenProjectList {
		t.Fatalf("expected project-list after delete, got %s", m.screen)
	}
	if len(m.projects) != 0 {
		t.Fatalf("expected no projects left, got %d", len(m.projects))
	}
	if len(m.tasks) != taskCount {
		t.Fatalf("tasks must survive a project delete, got %d", len(m.tasks))
	}
	for _, task := range m.tasks {
		if task.ProjectID != nil {
			t.Fatalf("task %q still references the deleted project", task.Title)
		}
	}
}

func TestConfirmStoreFaultBecomesErrorNotice(t *testing.T) {
	m := newSeededModel(t)
	m = press(t, m, key('d'))

	// Point the store at a dir that cannot exist (its parent is a regular
	// file) so the delete fails.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	m.store = store.Store{Dir: filepath.Join(blocker, "data")}

	m = press(t, m, key('y'))
	if m.notice.kind != noticeError || !strings.Contains(m.notice.text, "Delete failed") {
		t.Fatalf("store fault must surface as an error notice, got %+v", m.notice)
	}
	if m.screen != screenTaskList {
		t.Fatalf("expected return to the list, got %s", m.screen)
	}
	if !m.pendingDelete.empty() {
		t.Fatalf("intent must be cleared even on failure")
	}
}

func TestConfirmWithNoPendingIntentIsSafe(t *testing.T) {
	m := newSeededModel(t)
	m.goTo(screenConfirmDelete)
	m = press(t, m, key('y'))
	if m.screen != screenTaskList {
		t.Fatalf("empty intent must simply return, got %s", m.screen)
	}
}
