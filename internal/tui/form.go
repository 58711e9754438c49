package tui

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Generic form focus engine shared by every create/edit form. A form is an
// ordered field list plus a 1-based focus index; index len(fields)+1 is the
// save action. Text fields are backed by bubbles textinput (which keeps
// backspace correct for multi-byte text); choice fields cycle a fixed option
// list.

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
)

type choiceOption struct {
	value string
	label string
}

type formField struct {
	name  string
	label string
	kind  fieldKind

	// Text fields.
	input    textinput.Model
	required bool
	validate func(string) string // extra rule; returns a message or ""

	// Choice fields.
	options []choiceOption
	choice  int
}

func newTextField(name, label, value string, required bool, validate func(string) string) formField {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200
	in.Width = 40
	in.SetValue(value)
	return formField{
		name:     name,
		label:    label,
		kind:     fieldText,
		input:    in,
		required: required,
		validate: validate,
	}
}

func newChoiceField(name, label string, options []choiceOption, value string) formField {
	f := formField{
		name:    name,
		label:   label,
		kind:    fieldChoice,
		options: options,
	}
	for i, o := range options {
		if o.value == value {
			f.choice = i
			break
		}
	}
	return f
}

// cycleNext/cyclePrev wrap at both ends.
func (f *formField) cycleNext() {
	if len(f.options) == 0 {
		return
	}
	f.choice = (f.choice + 1) % len(f.options)
}

func (f *formField) cyclePrev() {
	if len(f.options) == 0 {
		return
	}
	f.choice = (f.choice - 1 + len(f.options)) % len(f.options)
}

type form struct {
	title  string
	fields []formField
	// idx is the 1-based focus; saveIndex() puts focus on the save action.
	idx    int
	errors map[string]string

	// Focus-navigation keys, configurable via config.json.
	nextKey string
	prevKey string
}

func newForm(title, nextKey, prevKey string, fields ...formField) *form {
	f := &form{
		title:   title,
		fields:  fields,
		idx:     1,
		errors:  map[string]string{},
		nextKey: nextKey,
		prevKey: prevKey,
	}
	f.applyFocus()
	return f
}

func (f *form) saveIndex() int { return len(f.fields) + 1 }
func (f *form) onSave() bool   { return f.idx == f.saveIndex() }

func (f *form) next() {
	if f.idx < f.saveIndex() {
		f.idx++
	}
	f.applyFocus()
}

func (f *form) prev() {
	if f.idx > 1 {
		f.idx--
	}
	f.applyFocus()
}

func (f *form) applyFocus() {
	for i := range f.fields {
		if f.fields[i].kind != fieldText {
			continue
		}
		if i+1 == f.idx {
			f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
}

// update processes one key message. It returns true when the key triggers
// validation + save (Enter anywhere, or activating the save action).
func (f *form) update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case f.nextKey:
		f.next()
		return false
	case f.prevKey:
		f.prev()
		return false
	}

	ev := decodeKey(msg)
	if ev.key == keyEnter {
		return true
	}
	if f.onSave() {
		if ev.key == keyUp {
			f.prev()
		}
		return false
	}

	fl := &f.fields[f.idx-1]
	switch fl.kind {
	case fieldText:
		switch ev.key {
		case keyUp:
			f.prev()
		case keyDown:
			f.next()
		default:
			fl.input, _ = fl.input.Update(msg)
		}
	case fieldChoice:
		switch {
		case ev.key == keyUp:
			fl.cyclePrev()
		case ev.key == keyDown:
			fl.cycleNext()
		case ev.key == keyRune && ev.r >= '1' && ev.r <= '9':
			if n := int(ev.r - '0'); n <= len(fl.options) {
				fl.choice = n - 1
			}
		}
	}
	return false
}

// validateAll recomputes the field->message mapping. All violations are
// collected, not short-circuited.
func (f *form) validateAll() map[string]string {
	errs := map[string]string{}
	for i := range f.fields {
		fl := &f.fields[i]
		if fl.kind != fieldText {
			continue
		}
		v := fl.input.Value()
		if fl.required && strings.TrimSpace(v) == "" {
			errs[fl.name] = fl.label + " is required"
			continue
		}
		if fl.validate != nil {
			if msg := fl.validate(v); msg != "" {
				errs[fl.name] = msg
			}
		}
	}
	f.errors = errs
	return errs
}

// value returns the current value of the named field: the text buffer for text
// fields, the selected option value for choice fields.
func (f *form) value(name string) string {
	for i := range f.fields {
		fl := &f.fields[i]
		if fl.name != name {
			continue
		}
		if fl.kind == fieldChoice {
			if len(fl.options) == 0 {
				return ""
			}
			return fl.options[fl.choice].value
		}
		return fl.input.Value()
	}
	return ""
}

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validateDate accepts empty or a calendar-valid YYYY-MM-DD date.
func validateDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !dateRe.MatchString(v) {
		return "date must be YYYY-MM-DD"
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return "not a valid calendar date"
	}
	return ""
}

// validateColor accepts empty or a #RRGGBB hex code.
func validateColor(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !colorRe.MatchString(v) {
		return "color must be #RRGGBB"
	}
	return ""
}

// renderForm draws the field list with the focus marker, per-field errors and
// the save action.
func renderForm(f *form, width int) string {
	labelW := 0
	for _, fl := range f.fields {
		if w := visibleWidth(fl.label); w > labelW {
			labelW = w
		}
	}

	errStyle := lipgloss.NewStyle().Foreground(colorErrorFg)
	focusMark := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("▌ ")

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(f.title))
	b.WriteString("\n\n")

	for i := range f.fields {
		fl := &f.fields[i]
		mark := "  "
		if i+1 == f.idx {
			mark = focusMark
		}

		var valueView string
		switch fl.kind {
		case fieldText:
			valueView = fl.input.View()
		case fieldChoice:
			opts := make([]string, 0, len(fl.options))
			for j, o := range fl.options {
				if j == fl.choice {
					opts = append(opts, styleSelected().Render(" "+o.label+" "))
				} else {
					opts = append(opts, styleMuted().Render(o.label))
				}
			}
			valueView = strings.Join(opts, "  ")
		}

		line := mark + padToWidth(fl.label, labelW) + "  " + valueView
		b.WriteString(truncateToWidth(line, width))
		b.WriteString("\n")
		if msg, ok := f.errors[fl.name]; ok {
			b.WriteString(strings.Repeat(" ", 2+labelW+2) + errStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	save := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render("Save")
	if f.onSave() {
		save = styleSelected().Padding(0, 1).Render("Save")
	}
	b.WriteString("  " + save)
	return b.String()
}
