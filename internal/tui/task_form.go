package tui

import (
	"strconv"
	"strings"

	"taskdeck/internal/model"
)

const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldStatus      = "status"
	fieldPriority    = "priority"
	fieldDue         = "due"
	fieldProject     = "project"
	fieldTag         = "tag"
	fieldName        = "name"
	fieldColor       = "color"
)

// newTaskForm builds the add/edit task form. For edits, existing prefills
// every field; absent optional values render as empty strings.
func newTaskForm(existing *model.Task, projects []model.Project, tags []model.Tag, nextKey, prevKey string) *form {
	title := "New task"
	base := model.Task{Status: model.StatusTodo, Priority: model.PriorityMedium}
	if existing != nil {
		title = "Edit task"
		base = *existing
	}

	statusOpts := make([]choiceOption, 0, len(model.Statuses()))
	for _, s := range model.Statuses() {
		statusOpts = append(statusOpts, choiceOption{value: string(s), label: s.Label()})
	}
	prioOpts := make([]choiceOption, 0, len(model.Priorities()))
	for _, p := range model.Priorities() {
		prioOpts = append(prioOpts, choiceOption{value: string(p), label: p.Label()})
	}

	projectOpts := []choiceOption{{value: "", label: "None"}}
	for _, p := range projects {
		projectOpts = append(projectOpts, choiceOption{value: strconv.FormatInt(p.ID, 10), label: p.Name})
	}
	tagOpts := []choiceOption{{value: "", label: "None"}}
	for _, t := range tags {
		tagOpts = append(tagOpts, choiceOption{value: strconv.FormatInt(t.ID, 10), label: t.Name})
	}

	return newForm(title, nextKey, prevKey,
		newTextField(fieldTitle, "Title", base.Title, true, nil),
		newTextField(fieldDescription, "Description", base.Description, false, nil),
		newChoiceField(fieldStatus, "Status", statusOpts, string(base.Status)),
		newChoiceField(fieldPriority, "Priority", prioOpts, string(base.Priority)),
		newTextField(fieldDue, "Due (YYYY-MM-DD)", base.Due, false, validateDate),
		newChoiceField(fieldProject, "Project", projectOpts, refValue(base.ProjectID)),
		newChoiceField(fieldTag, "Tag", tagOpts, refValue(base.TagID)),
	)
}

// taskFromForm applies the form values onto base (base carries ID/CreatedAt
// for edits).
func taskFromForm(f *form, base model.Task) model.Task {
	base.Title = strings.TrimSpace(f.value(fieldTitle))
	base.Description = f.value(fieldDescription)
	base.Status = model.Status(f.value(fieldStatus))
	base.Priority = model.Priority(f.value(fieldPriority))
	base.Due = strings.TrimSpace(f.value(fieldDue))
	base.ProjectID = refFromValue(f.value(fieldProject))
	base.TagID = refFromValue(f.value(fieldTag))
	return base
}

func refValue(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func refFromValue(v string) *int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
