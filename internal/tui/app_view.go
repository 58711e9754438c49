package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	w := m.bodyWidth()

	header := renderHeader("taskdeck", m.subtitle(), w)
	body := m.viewBody(w)
	footer := renderFooter(m.footerHints(), w)

	lines := []string{header, "", body, ""}
	if !m.notice.empty() {
		lines = append(lines, renderNotice(m.notice, w))
	}
	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

func (m appModel) subtitle() string {
	switch m.screen {
	case screenTaskList:
		sub := fmt.Sprintf("%d tasks", len(m.tasks))
		if m.filters.active() {
			sub += "  ·  " + m.filters.describe(m.projects, m.tags)
		}
		return sub
	case screenTaskDetail:
		return "task"
	case screenProjectList:
		return "projects"
	case screenTagList:
		return "tags"
	case screenFilterMenu, screenFilterStatus, screenFilterProject, screenFilterTag:
		return "filter"
	case screenConfirmDelete:
		return "confirm"
	}
	return ""
}

func (m appModel) viewBody(w int) string {
	switch m.screen {
	case screenTaskList:
		ls := m.cursors[screenTaskList]
		if ls == nil {
			ls = &listState{}
		}
		return renderTaskTable(m.tasks, m.projects, m.tags, *ls, w, m.listHeight())
	case screenTaskDetail:
		return m.viewTaskDetail(w)
	case screenTaskAdd, screenTaskEdit,
		screenProjectAdd, screenProjectEdit,
		screenTagAdd, screenTagEdit:
		if m.form == nil {
			return styleMuted().Render("No form open.")
		}
		return renderForm(m.form, w)
	case screenProjectList:
		names := make([]string, len(m.projects))
		colors := make([]string, len(m.projects))
		counts := make([]int, len(m.projects))
		for i, p := range m.projects {
			names[i] = p.Name
			colors[i] = p.Color
			counts[i] = m.taskCountByProject(p.ID)
		}
		ls := m.cursors[screenProjectList]
		if ls == nil {
			ls = &listState{}
		}
		return renderNameTable(names, colors, counts, *ls, w, m.listHeight(),
			"No projects. Press a to add one.")
	case screenTagList:
		names := make([]string, len(m.tags))
		colors := make([]string, len(m.tags))
		counts := make([]int, len(m.tags))
		for i, t := range m.tags {
			names[i] = t.Name
			colors[i] = t.Color
			counts[i] = m.taskCountByTag(t.ID)
		}
		ls := m.cursors[screenTagList]
		if ls == nil {
			ls = &listState{}
		}
		return renderNameTable(names, colors, counts, *ls, w, m.listHeight(),
			"No tags. Press a to add one.")
	case screenFilterMenu:
		return renderMenu(filterMenuLabels(m.filters, m.projects, m.tags), m.menuCursor(screenFilterMenu), w)
	case screenFilterStatus:
		return renderMenu(statusMenuOptions(), m.menuCursor(screenFilterStatus), w)
	case screenFilterProject:
		return renderMenu(projectMenuOptions(m.projects), m.menuCursor(screenFilterProject), w)
	case screenFilterTag:
		return renderMenu(tagMenuOptions(m.tags), m.menuCursor(screenFilterTag), w)
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	}
	// Unmapped screen: a programming error, rendered as a diagnostic rather
	// than a crash.
	return lipgloss.NewStyle().Foreground(colorErrorFg).
		Render(fmt.Sprintf("unhandled screen %s: this is a bug", m.screen))
}

func (m appModel) menuCursor(s screen) listState {
	if ls := m.cursors[s]; ls != nil {
		return *ls
	}
	return listState{idx: 1}
}

func (m appModel) viewTaskDetail(w int) string {
	t := m.currentTask
	if t == nil {
		return styleMuted().Render("No task selected.")
	}

	label := styleMuted().Render
	ref := func(id *int64, name func(int64) (string, bool)) string {
		if id == nil {
			return "-"
		}
		if n, ok := name(*id); ok {
			return n
		}
		return "#" + strconv.FormatInt(*id, 10)
	}
	projectName := func(id int64) (string, bool) {
		for _, p := range m.projects {
			if p.ID == id {
				return p.Name, true
			}
		}
		return "", false
	}
	tagName := func(id int64) (string, bool) {
		for _, t := range m.tags {
			if t.ID == id {
				return t.Name, true
			}
		}
		return "", false
	}
	due := t.Due
	if due == "" {
		due = "-"
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(t.Title),
		"",
		label("Status   ") + statusStyle(t.Status).Render(t.Status.Label()),
		label("Priority ") + priorityStyle(t.Priority).Render(t.Priority.Label()),
		label("Due      ") + due,
		label("Project  ") + ref(t.ProjectID, projectName),
		label("Tag      ") + ref(t.TagID, tagName),
	}
	if strings.TrimSpace(t.Description) != "" {
		lines = append(lines, "", renderMarkdown(t.Description, w-4))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) footerHints() []keyHint {
	switch m.screen {
	case screenTaskList:
		return []keyHint{
			{"↑/↓", "move"}, {"enter", "open"}, {"a", "add"}, {"e", "edit"},
			{"d", "delete"}, {"space", "status"}, {"f", "filter"},
			{"p", "projects"}, {"t", "tags"}, {"q", "quit"},
		}
	case screenTaskDetail:
		return []keyHint{{"e", "edit"}, {"d", "delete"}, {"esc", "back"}}
	case screenTaskAdd, screenTaskEdit,
		screenProjectAdd, screenProjectEdit,
		screenTagAdd, screenTagEdit:
		next := "tab"
		prev := "shift+tab"
		if m.form != nil {
			next = m.form.nextKey
			prev = m.form.prevKey
		}
		return []keyHint{
			{next, "next field"}, {prev, "previous"},
			{"enter", "save"}, {"esc", "cancel"},
		}
	case screenProjectList, screenTagList:
		return []keyHint{
			{"↑/↓", "move"}, {"a", "add"}, {"enter", "edit"},
			{"d", "delete"}, {"esc", "back"},
		}
	case screenFilterMenu:
		return []keyHint{{"↑/↓", "move"}, {"enter", "select"}, {"esc", "back"}}
	case screenFilterStatus, screenFilterProject, screenFilterTag:
		return []keyHint{{"↑/↓", "move"}, {"enter", "apply"}, {"esc", "back"}}
	case screenConfirmDelete:
		return []keyHint{{"tab", "focus"}, {"enter", "select"}, {"y/n", "confirm/cancel"}}
	}
	return nil
}
