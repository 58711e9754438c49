package model

import "time"

// Status is the closed task status enumeration.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses returns all statuses in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label returns the human-readable form (e.g. "In progress").
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To do"
	case StatusInProgress:
		return "In progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Next cycles todo -> in_progress -> done -> todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Priority is the closed 3-level priority enumeration.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	Priority    Priority
	// Due is an optional YYYY-MM-DD date; empty means no due date.
	Due string
	// ProjectID/TagID are optional references. The store clears them (it does not
	// cascade) when the referenced project/tag is deleted.
	ProjectID *int64
	TagID     *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID   int64
	Name string
	// Color is an optional #RRGGBB hex code; empty means no color.
	Color     string
	CreatedAt time.Time
}

type Tag struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
}
