package tui

import (
	"strings"

	"taskdeck/internal/model"
)

func newProjectForm(existing *model.Project, nextKey, prevKey string) *form {
	title := "New project"
	base := model.Project{}
	if existing != nil {
		title = "Edit project"
		base = *existing
	}
	return newForm(title, nextKey, prevKey,
		newTextField(fieldName, "Name", base.Name, true, nil),
		newTextField(fieldColor, "Color (#RRGGBB)", base.Color, false, validateColor),
	)
}

func projectFromForm(f *form, base model.Project) model.Project {
	base.Name = strings.TrimSpace(f.value(fieldName))
	base.Color = strings.TrimSpace(f.value(fieldColor))
	return base
}

func newTagForm(existing *model.Tag, nextKey, prevKey string) *form {
	title := "New tag"
	base := model.Tag{}
	if existing != nil {
		title = "Edit tag"
		base = *existing
	}
	return newForm(title, nextKey, prevKey,
		newTextField(fieldName, "Name", base.Name, true, nil),
		newTextField(fieldColor, "Color (#RRGGBB)", base.Color, false, validateColor),
	)
}

func tagFromForm(f *form, base model.Tag) model.Tag {
	base.Name = strings.TrimSpace(f.value(fieldName))
	base.Color = strings.TrimSpace(f.value(fieldColor))
	return base
}
