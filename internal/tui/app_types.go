package tui

import "fmt"

// screen identifies one view of the directed screen graph. Dispatch is an
// exhaustive switch over this closed set; the default branch renders a
// diagnostic placeholder because reaching it is a programming error, not a
// user-facing fault.
type screen int

const (
	screenTaskList screen = iota
	screenTaskDetail
	screenTaskAdd
	screenTaskEdit
	screenProjectList
	screenProjectAdd
	screenProjectEdit
	screenTagList
	screenTagAdd
	screenTagEdit
	screenFilterMenu
	screenFilterStatus
	screenFilterProject
	screenFilterTag
	screenConfirmDelete
)

func (s screen) String() string {
	switch s {
	case screenTaskList:
		return "task-list"
	case screenTaskDetail:
		return "task-detail"
	case screenTaskAdd:
		return "task-add"
	case screenTaskEdit:
		return "task-edit"
	case screenProjectList:
		return "project-list"
	case screenProjectAdd:
		return "project-add"
	case screenProjectEdit:
		return "project-edit"
	case screenTagList:
		return "tag-list"
	case screenTagAdd:
		return "tag-add"
	case screenTagEdit:
		return "tag-edit"
	case screenFilterMenu:
		return "filter-menu"
	case screenFilterStatus:
		return "filter-status"
	case screenFilterProject:
		return "filter-project"
	case screenFilterTag:
		return "filter-tag"
	case screenConfirmDelete:
		return "confirm-delete"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// notice is a one-shot message line cleared on the next keystroke.
type notice struct {
	kind noticeKind
	text string
}

func (n notice) empty() bool { return n.text == "" }

type deleteKind int

const (
	deleteNone deleteKind = iota
	deleteTask
	deleteProject
	deleteTag
)

// pendingDelete is the delete intent set before entering the confirmation
// screen. The zero value means no deletion is pending.
type pendingDelete struct {
	kind deleteKind
	id   int64
	name string
}

func (p pendingDelete) empty() bool { return p.kind == deleteNone }

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)
