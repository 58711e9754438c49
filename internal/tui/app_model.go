package tui

import (
	"context"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

// appModel is the single owned aggregate for one session. It is a bubbletea
// model value threaded through Update/View; handlers mutate a copy and return
// it, render functions never mutate. Tests construct independent models.
type appModel struct {
	ctx   context.Context
	store store.Store
	cfg   store.GlobalConfig

	width  int
	height int

	screen   screen
	navStack []screen

	// Cached entity collections, refreshed from the store on demand. tasks is
	// the filtered view; allTasks is the unfiltered listing backing the usage
	// counts on the project/tag screens.
	tasks    []model.Task
	allTasks []model.Task
	projects []model.Project
	tags     []model.Tag

	// Per-screen cursor/viewport state for the visible lists and menus.
	cursors map[screen]*listState

	// Entity under inspection or edit, owned for the duration of the visit.
	currentTask    *model.Task
	currentProject *model.Project
	currentTag     *model.Tag

	filters       filters
	form          *form
	pendingDelete pendingDelete
	confirmFocus  confirmFocus

	notice notice
}

func newAppModel(s store.Store, cfg store.GlobalConfig) (appModel, error) {
	m := appModel{
		ctx:     context.Background(),
		store:   s,
		cfg:     cfg,
		screen:  screenTaskList,
		cursors: map[screen]*listState{},
	}
	if err := m.refreshAll(); err != nil {
		return appModel{}, err
	}
	return m, nil
}

// cur returns the cursor state for the current screen, creating it on first
// use.
func (m *appModel) cur() *listState {
	ls, ok := m.cursors[m.screen]
	if !ok {
		ls = &listState{}
		m.cursors[m.screen] = ls
	}
	return ls
}

// cursorFor is cur for an explicit screen.
func (m *appModel) cursorFor(s screen) *listState {
	ls, ok := m.cursors[s]
	if !ok {
		ls = &listState{}
		m.cursors[s] = ls
	}
	return ls
}

// enterMenu navigates to a menu screen with the cursor reset to the first of
// n entries.
func (m *appModel) enterMenu(s screen, n int) {
	ls := m.cursorFor(s)
	ls.reset()
	ls.move(1, n)
	m.goTo(s)
}

func (m *appModel) refreshTasks() error {
	all, err := m.store.ListTasks(m.ctx, store.TaskFilter{})
	if err != nil {
		return err
	}
	m.allTasks = all
	tasks := all
	if m.filters.active() {
		tasks, err = m.store.ListTasks(m.ctx, m.filters.taskFilter())
		if err != nil {
			return err
		}
	}
	m.tasks = tasks
	m.cursorFor(screenTaskList).clamp(len(tasks))
	return nil
}

func (m *appModel) refreshProjects() error {
	projects, err := m.store.ListProjects(m.ctx)
	if err != nil {
		return err
	}
	m.projects = projects
	m.cursorFor(screenProjectList).clamp(len(projects))
	return nil
}

func (m *appModel) refreshTags() error {
	tags, err := m.store.ListTags(m.ctx)
	if err != nil {
		return err
	}
	m.tags = tags
	m.cursorFor(screenTagList).clamp(len(tags))
	return nil
}

func (m *appModel) refreshAll() error {
	if err := m.refreshProjects(); err != nil {
		return err
	}
	if err := m.refreshTags(); err != nil {
		return err
	}
	return m.refreshTasks()
}

// fail surfaces a store fault as a one-shot error notice; state stays intact.
func (m *appModel) fail(err error) {
	m.notice = notice{kind: noticeError, text: err.Error()}
}

func (m appModel) selectedTask() (model.Task, bool) {
	ls := m.cursors[screenTaskList]
	if ls == nil || ls.idx < 1 || ls.idx > len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[ls.idx-1], true
}

func (m appModel) selectedProject() (model.Project, bool) {
	ls := m.cursors[screenProjectList]
	if ls == nil || ls.idx < 1 || ls.idx > len(m.projects) {
		return model.Project{}, false
	}
	return m.projects[ls.idx-1], true
}

func (m appModel) selectedTag() (model.Tag, bool) {
	ls := m.cursors[screenTagList]
	if ls == nil || ls.idx < 1 || ls.idx > len(m.tags) {
		return model.Tag{}, false
	}
	return m.tags[ls.idx-1], true
}

// listHeight is the body height left after chrome.
func (m appModel) listHeight() int {
	h := m.height - 7
	if h < 8 {
		h = 8
	}
	return h
}

func (m appModel) bodyWidth() int {
	if m.width < 40 {
		return 80
	}
	return m.width
}

// taskCountByProject/taskCountByTag count all tasks regardless of active
// filters, for the management screens.
func (m appModel) taskCountByProject(id int64) int {
	n := 0
	for _, t := range m.allTasks {
		if t.ProjectID != nil && *t.ProjectID == id {
			n++
		}
	}
	return n
}

func (m appModel) taskCountByTag(id int64) int {
	n := 0
	for _, t := range m.allTasks {
		if t.TagID != nil && *t.TagID == id {
			n++
		}
	}
	return n
}
