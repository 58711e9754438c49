package tui

import (
	"strings"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

// filters holds the three independent predicates for the task list. Set
// predicates are AND-combined by the store's list query.
type filters struct {
	status    *model.Status
	projectID *int64
	tagID     *int64
}

func (f filters) active() bool {
	return f.status != nil || f.projectID != nil || f.tagID != nil
}

func (f *filters) clear() {
	f.status = nil
	f.projectID = nil
	f.tagID = nil
}

func (f filters) taskFilter() store.TaskFilter {
	return store.TaskFilter{Status: f.status, ProjectID: f.projectID, TagID: f.tagID}
}

// describe renders the active predicates for the task-list subtitle, e.g.
// "status=In progress · project=Work".
func (f filters) describe(projects []model.Project, tags []model.Tag) string {
	var parts []string
	if f.status != nil {
		parts = append(parts, "status="+f.status.Label())
	}
	if f.projectID != nil {
		name := "?"
		for _, p := range projects {
			if p.ID == *f.projectID {
				name = p.Name
				break
			}
		}
		parts = append(parts, "project="+name)
	}
	if f.tagID != nil {
		name := "?"
		for _, t := range tags {
			if t.ID == *f.tagID {
				name = t.Name
				break
			}
		}
		parts = append(parts, "tag="+name)
	}
	return strings.Join(parts, " · ")
}

// Filter menu entries, in display order.
const (
	filterMenuStatus = iota
	filterMenuProject
	filterMenuTag
	filterMenuClear
	filterMenuCount
)

func filterMenuLabels(f filters, projects []model.Project, tags []model.Tag) []string {
	status := "All"
	if f.status != nil {
		status = f.status.Label()
	}
	project := "All"
	if f.projectID != nil {
		for _, p := range projects {
			if p.ID == *f.projectID {
				project = p.Name
			}
		}
	}
	tag := "All"
	if f.tagID != nil {
		for _, t := range tags {
			if t.ID == *f.tagID {
				tag = t.Name
			}
		}
	}
	return []string{
		"Status: " + status,
		"Project: " + project,
		"Tag: " + tag,
		"Clear all filters",
	}
}

// Sub-menu option lists. Index 0 is always "All" (clears that predicate).

func statusMenuOptions() []string {
	out := []string{"All"}
	for _, s := range model.Statuses() {
		out = append(out, s.Label())
	}
	return out
}

func projectMenuOptions(projects []model.Project) []string {
	out := []string{"All"}
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

func tagMenuOptions(tags []model.Tag) []string {
	out := []string{"All"}
	for _, t := range tags {
		out = append(out, t.Name)
	}
	return out
}
