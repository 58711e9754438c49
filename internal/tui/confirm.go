package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Delete workflow: callers set the pending intent (kind, id, name) and
// navigate to the confirmation screen. Confirm runs the matching store delete
// and jumps to that entity kind's list; cancel clears the intent and goes
// back.

func (m *appModel) enterDelete(kind deleteKind, id int64, name string) {
	m.pendingDelete = pendingDelete{kind: kind, id: id, name: name}
	m.confirmFocus = confirmFocusCancel
	m.goTo(screenConfirmDelete)
}

func (m appModel) updateConfirmDelete(ev keyEvent) (appModel, tea.Cmd) {
	switch {
	case ev.key == keyTab, ev.key == keyShiftTab, ev.key == keyLeft, ev.key == keyRight:
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
	case ev.key == keyEnter:
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		m.cancelDelete()
	case ev.isRune('y'), ev.isRune('Y'):
		return m.confirmDelete()
	case ev.isRune('n'), ev.isRune('N'), ev.key == keyEscape:
		m.cancelDelete()
	}
	return m, nil
}

func (m appModel) confirmDelete() (appModel, tea.Cmd) {
	p := m.pendingDelete
	if p.empty() {
		// Nothing pending: simply return.
		m.goBack()
		return m, nil
	}

	var (
		err  error
		home screen
	)
	switch p.kind {
	case deleteTask:
		err = m.store.DeleteTask(m.ctx, p.id)
		home = screenTaskList
		if err == nil && m.currentTask != nil && m.currentTask.ID == p.id {
			m.currentTask = nil
		}
	case deleteProject:
		err = m.store.DeleteProject(m.ctx, p.id)
		home = screenProjectList
		if err == nil && m.currentProject != nil && m.currentProject.ID == p.id {
			m.currentProject = nil
		}
	case deleteTag:
		err = m.store.DeleteTag(m.ctx, p.id)
		home = screenTagList
		if err == nil && m.currentTag != nil && m.currentTag.ID == p.id {
			m.currentTag = nil
		}
	default:
		m.goBack()
		return m, nil
	}

	m.pendingDelete = pendingDelete{}
	if err != nil {
		m.notice = notice{kind: noticeError, text: "Delete failed: " + err.Error()}
		m.goBack()
		return m, nil
	}
	if err := m.refreshAll(); err != nil {
		m.fail(err)
	} else {
		m.notice = notice{kind: noticeSuccess, text: fmt.Sprintf("Deleted %q", p.name)}
	}
	m.jumpTo(home)
	return m, nil
}

func (m *appModel) cancelDelete() {
	m.pendingDelete = pendingDelete{}
	m.goBack()
}

func (m appModel) viewConfirmDelete() string {
	p := m.pendingDelete
	kind := "entry"
	switch p.kind {
	case deleteTask:
		kind = "task"
	case deleteProject:
		kind = "project"
	case deleteTag:
		kind = "tag"
	}
	body := fmt.Sprintf("Delete %s %q?", kind, p.name)
	if p.kind == deleteProject || p.kind == deleteTag {
		body += "\n" + styleMuted().Render("Tasks referencing it keep existing; the reference is cleared.")
	}

	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := styleSelected().Padding(0, 1)

	confirm := btnBase.Render("Delete")
	cancel := btnBase.Render("Cancel")
	if m.confirmFocus == confirmFocusConfirm {
		confirm = btnActive.Render("Delete")
	} else {
		cancel = btnActive.Render("Cancel")
	}

	return strings.Join([]string{
		body,
		"",
		confirm + " " + cancel,
	}, "\n")
}
