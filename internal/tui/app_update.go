package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey routes one decoded key to the active screen's handler. The router
// itself never mutates state beyond clearing the one-shot notice.
func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// One-shot: any keystroke clears the previous notice before dispatch.
	m.notice = notice{}

	ev := decodeKey(msg)
	if ev.key == keyCtrlC {
		return m, tea.Quit
	}
	if ev.key == keyNone {
		// Unparseable or out-of-set sequence: dropped, not propagated.
		return m, nil
	}

	switch m.screen {
	case screenTaskList:
		return m.updateTaskList(ev)
	case screenTaskDetail:
		return m.updateTaskDetail(ev)
	case screenTaskAdd, screenTaskEdit,
		screenProjectAdd, screenProjectEdit,
		screenTagAdd, screenTagEdit:
		return m.updateForm(ev, msg)
	case screenProjectList:
		return m.updateProjectList(ev)
	case screenTagList:
		return m.updateTagList(ev)
	case screenFilterMenu:
		return m.updateFilterMenu(ev)
	case screenFilterStatus:
		return m.updateFilterStatus(ev)
	case screenFilterProject:
		return m.updateFilterProject(ev)
	case screenFilterTag:
		return m.updateFilterTag(ev)
	case screenConfirmDelete:
		return m.updateConfirmDelete(ev)
	}
	return m, nil
}

func (m appModel) updateTaskList(ev keyEvent) (appModel, tea.Cmd) {
	ls := m.cur()
	n := len(m.tasks)

	switch {
	case ev.key == keyUp || ev.isRune('k'):
		ls.move(-1, n)
		ls.scrollTo(m.listHeight())
	case ev.key == keyDown || ev.isRune('j'):
		ls.move(1, n)
		ls.scrollTo(m.listHeight())
	case ev.key == keyEnter:
		if t, ok := m.selectedTask(); ok {
			tt := t
			m.currentTask = &tt
			m.goTo(screenTaskDetail)
		}
	case ev.isRune('a'):
		m.form = newTaskForm(nil, m.projects, m.tags, m.cfg.FormNextKey(), m.cfg.FormPrevKey())
		m.goTo(screenTaskAdd)
	case ev.isRune('e'):
		if t, ok := m.selectedTask(); ok {
			tt := t
			m.currentTask = &tt
			m.form = newTaskForm(&tt, m.projects, m.tags, m.cfg.FormNextKey(), m.cfg.FormPrevKey())
			m.goTo(screenTaskEdit)
		}
	case ev.isRune('d'):
		if t, ok := m.selectedTask(); ok {
			m.enterDelete(deleteTask, t.ID, t.Title)
		}
	case ev.isRune(' '):
		if t, ok := m.selectedTask(); ok {
			t.Status = t.Status.Next()
			if err := m.store.UpdateTask(m.ctx, t); err != nil {
				m.fail(err)
			} else if err := m.refreshTasks(); err != nil {
				m.fail(err)
			} else {
				m.notice = notice{kind: noticeInfo, text: fmt.Sprintf("%q → %s", t.Title, t.Status.Label())}
			}
		}
	case ev.isRune('f'):
		m.enterMenu(screenFilterMenu, filterMenuCount)
	case ev.isRune('p'):
		m.goTo(screenProjectList)
		m.cur().clamp(len(m.projects))
	case ev.isRune('t'):
		m.goTo(screenTagList)
		m.cur().clamp(len(m.tags))
	case ev.isRune('q'):
		return m, tea.Quit
	case ev.key == keyEscape:
		m.goBack()
	}
	return m, nil
}

func (m appModel) updateTaskDetail(ev keyEvent) (appModel, tea.Cmd) {
	switch {
	case ev.isRune('e'):
		if m.currentTask != nil {
			m.form = newTaskForm(m.currentTask, m.projects, m.tags, m.cfg.FormNextKey(), m.cfg.FormPrevKey())
			m.goTo(screenTaskEdit)
		}
	case ev.isRune('d'):
		if m.currentTask != nil {
			m.enterDelete(deleteTask, m.currentTask.ID, m.currentTask.Title)
		}
	case ev.key == keyEscape || ev.isRune('q'):
		m.currentTask = nil
		m.goBack()
	}
	return m, nil
}

func (m appModel) updateProjectList(ev keyEvent) (appModel, tea.Cmd) {
	ls := m.cur()
	n := len(m.projects)

	switch {
	case ev.key == keyUp || ev.isRune('k'):
		ls.move(-1, n)
		ls.scrollTo(m.listHeight())
	case ev.key == keyDown || ev.isRune('j'):
		ls.move(1, n)
		ls.scrollTo(m.listHeight())
	case ev.isRune('a'):
		m.form = newProjectForm(nil, m.cfg.FormNextKey(), m.cfg.FormPrevKey())
		m.goTo(screenProjectAdd)
	case ev.key == keyEnter || ev.isRune('e'):
		if p, ok := m.selectedProject(); ok {
			pp := p
			m.currentProject = &pp
			m.form = newProjectForm(&pp, m.cfg.FormNextKey(), m.cfg.FormPrevKey())
			m.goTo(screenProjectEdit)
		}
	case ev.isRune('d'):
		if p, ok := m.selectedProject(); ok {
			m.enterDelete(deleteProject, p.ID, p.Name)
		}
	case ev.key == keyEscape || ev.isRune('q'):
		m.goBack()
	}
	return m, nil
}

func (m appModel) updateTagList(ev keyEvent) (appModel, tea.Cmd) {
	ls := m.cur()
	n := len(m.tags)

	switch {
	case ev.key == keyUp || ev.isRune('k'):
		ls.move(-1, n)
		ls.scrollTo(m.listHeight())
	case ev.key == keyDown || ev.isRune('j'):
		ls.move(1, n)
		ls.scrollTo(m.listHeight())
	case ev.isRune('a'):
		m.form = newTagForm(nil, m.cfg.FormNextKey(), m.cfg.FormPrevKey())
		m.goTo(screenTagAdd)
	case ev.key == keyEnter || ev.isRune('e'):
		if t, ok := m.selectedTag(); ok {
			tt := t
			m.currentTag = &tt
			m.form = newTagForm(&tt, m.cfg.FormNextKey(), m.cfg.FormPrevKey())
			m.goTo(screenTagEdit)
		}
	case ev.isRune('d'):
		if t, ok := m.selectedTag(); ok {
			m.enterDelete(deleteTag, t.ID, t.Name)
		}
	case ev.key == keyEscape || ev.isRune('q'):
		m.goBack()
	}
	return m, nil
}

// updateForm serves all six add/edit screens through the shared focus engine.
func (m appModel) updateForm(ev keyEvent, msg tea.KeyMsg) (appModel, tea.Cmd) {
	if m.form == nil {
		m.goBack()
		return m, nil
	}
	if ev.key == keyEscape {
		// Cancel keeps the current entity refs intact: the back target may be
		// the detail screen, which still needs them.
		m.form = nil
		m.goBack()
		return m, nil
	}
	if m.form.update(msg) {
		return m.saveForm()
	}
	return m, nil
}

// syncCurrentAfterSave re-points the current entity refs at the values just
// written, so a detail screen behind the form renders the updated entity.
func (m *appModel) syncCurrentAfterSave(f *form) {
	switch m.screen {
	case screenTaskEdit:
		if m.currentTask != nil {
			t := taskFromForm(f, *m.currentTask)
			m.currentTask = &t
		}
	case screenProjectEdit:
		if m.currentProject != nil {
			p := projectFromForm(f, *m.currentProject)
			m.currentProject = &p
		}
	case screenTagEdit:
		if m.currentTag != nil {
			tg := tagFromForm(f, *m.currentTag)
			m.currentTag = &tg
		}
	}
}

// saveForm validates, then routes to the matching store operation. Validation
// faults stay on the form with field-scoped messages; store faults become a
// one-shot error notice with entered values intact.
func (m appModel) saveForm() (appModel, tea.Cmd) {
	f := m.form
	if len(f.validateAll()) > 0 {
		m.notice = notice{kind: noticeWarning, text: "Fix the highlighted fields"}
		return m, nil
	}

	var (
		err   error
		saved string
	)
	switch m.screen {
	case screenTaskAdd:
		t := taskFromForm(f, model.Task{})
		err = m.store.CreateTask(m.ctx, &t)
		saved = t.Title
	case screenTaskEdit:
		base := model.Task{}
		if m.currentTask != nil {
			base = *m.currentTask
		}
		t := taskFromForm(f, base)
		err = m.store.UpdateTask(m.ctx, t)
		saved = t.Title
	case screenProjectAdd:
		p := projectFromForm(f, model.Project{})
		err = m.store.CreateProject(m.ctx, &p)
		saved = p.Name
	case screenProjectEdit:
		base := model.Project{}
		if m.currentProject != nil {
			base = *m.currentProject
		}
		p := projectFromForm(f, base)
		err = m.store.UpdateProject(m.ctx, p)
		saved = p.Name
	case screenTagAdd:
		t := tagFromForm(f, model.Tag{})
		err = m.store.CreateTag(m.ctx, &t)
		saved = t.Name
	case screenTagEdit:
		base := model.Tag{}
		if m.currentTag != nil {
			base = *m.currentTag
		}
		t := tagFromForm(f, base)
		err = m.store.UpdateTag(m.ctx, t)
		saved = t.Name
	default:
		return m, nil
	}

	if err != nil {
		if errors.Is(err, store.ErrNameTaken) {
			m.notice = notice{kind: noticeError, text: fmt.Sprintf("Name %q is already in use", saved)}
		} else {
			m.fail(err)
		}
		// Stay on the form; entered values remain intact.
		return m, nil
	}

	if err := m.refreshAll(); err != nil {
		m.fail(err)
	} else {
		m.notice = notice{kind: noticeSuccess, text: fmt.Sprintf("Saved %q", saved)}
	}
	m.syncCurrentAfterSave(f)
	m.form = nil
	m.goBack()
	return m, nil
}

func (m appModel) updateFilterMenu(ev keyEvent) (appModel, tea.Cmd) {
	ls := m.cur()
	switch {
	case ev.key == keyUp || ev.isRune('k'):
		ls.move(-1, filterMenuCount)
	case ev.key == keyDown || ev.isRune('j'):
		ls.move(1, filterMenuCount)
	case ev.key == keyEnter:
		switch ls.idx - 1 {
		case filterMenuStatus:
			m.enterMenu(screenFilterStatus, len(statusMenuOptions()))
		case filterMenuProject:
			m.enterMenu(screenFilterProject, len(projectMenuOptions(m.projects)))
		case filterMenuTag:
			m.enterMenu(screenFilterTag, len(tagMenuOptions(m.tags)))
		case filterMenuClear:
			m.filters.clear()
			if err := m.refreshTasks(); err != nil {
				m.fail(err)
			} else {
				m.notice = notice{kind: noticeInfo, text: "Filters cleared"}
			}
			m.cursorFor(screenTaskList).reset()
			m.cursorFor(screenTaskList).clamp(len(m.tasks))
			m.jumpTo(screenTaskList)
		}
	case ev.key == keyEscape || ev.isRune('q'):
		m.goBack()
	}
	return m, nil
}

// applyFilterSelection is shared by the three sub-menus: it sets or clears one
// predicate, refreshes, resets the list viewport to the top and jumps straight
// to the task list (bypassing the filter menu by design).
func (m appModel) applyFilterSelection(set func(*filters)) (appModel, tea.Cmd) {
	set(&m.filters)
	if err := m.refreshTasks(); err != nil {
		m.fail(err)
	}
	m.cursorFor(screenTaskList).reset()
	m.cursorFor(screenTaskList).clamp(len(m.tasks))
	m.jumpTo(screenTaskList)
	return m, nil
}

func (m appModel) updateFilterStatus(ev keyEvent) (appModel, tea.Cmd) {
	ls := m.cur()
	n := len(statusMenuOptions())
	switch {
	case ev.key == keyUp || ev.isRune('k'):
		ls.move(-1, n)
	case ev.key == keyDown || ev.isRune('j'):
		ls.move(1, n)
	case ev.key == keyEnter:
		idx := ls.idx
		return m.applyFilterSelection(func(f *filters) {
			if idx <= 1 {
				f.status = nil
				return
			}
			s := model.Statuses()[idx-2]
			f.status = &s
		})
	case ev.key == keyEscape || ev.isRune('q'):
		m.goBack()
	}
	return m, nil
}

func (m appModel) updateFilterProject(ev keyEvent) (appModel, tea.Cmd) {
	ls := m.cur()
	n := len(projectMenuOptions(m.projects))
	switch {
	case ev.key == keyUp || ev.isRune('k'):
		ls.move(-1, n)
	case ev.key == keyDown || ev.isRune('j'):
		ls.move(1, n)
	case ev.key == keyEnter:
		idx := ls.idx
		projects := m.projects
		return m.applyFilterSelection(func(f *filters) {
			if idx <= 1 || idx-2 >= len(projects) {
				f.projectID = nil
				return
			}
			id := projects[idx-2].ID
			f.projectID = &id
		})
	case ev.key == keyEscape || ev.isRune('q'):
		m.goBack()
	}
	return m, nil
}

func (m appModel) updateFilterTag(ev keyEvent) (appModel, tea.Cmd) {
	ls := m.cur()
	n := len(tagMenuOptions(m.tags))
	switch {
	case ev.key == keyUp || ev.isRune('k'):
		ls.move(-1, n)
	case ev.key == keyDown || ev.isRune('j'):
		ls.move(1, n)
	case ev.key == keyEnter:
		idx := ls.idx
		tags := m.tags
		return m.applyFilterSelection(func(f *filters) {
			if idx <= 1 || idx-2 >= len(tags) {
				f.tagID = nil
				return
			}
			id := tags[idx-2].ID
			f.tagID = &id
		})
	case ev.key == keyEscape || ev.isRune('q'):
		m.goBack()
	}
	return m, nil
}
