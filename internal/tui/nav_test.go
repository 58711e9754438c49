package tui

import "testing"

func TestNavStackPushPop(t *testing.T) {
	m := appModel{screen: screenTaskList}

	m.goTo(screenProjectList)
	m.goTo(screenProjectEdit)
	if m.screen != screenProjectEdit {
		t.Fatalf("expected project-edit, got %s", m.screen)
	}

	m.goBack()
	if m.screen != screenProjectList {
		t.Fatalf("back once: expected project-list, got %s", m.screen)
	}
	m.goBack()
	if m.screen != screenTaskList {
		t.Fatalf("back twice: expected task-list, got %s", m.screen)
	}

	// Empty stack: back is a no-op, never panics.
	m.goBack()
	if m.screen != screenTaskList {
		t.Fatalf("back on empty stack must not move, got %s", m.screen)
	}
}

func TestJumpToClearsHistory(t *testing.T) {
	m := appModel{screen: screenTaskList}
	m.goTo(screenFilterMenu)
	m.goTo(screenFilterStatus)

	m.jumpTo(screenTaskList)
	if m.screen != screenTaskList {
		t.Fatalf("expected task-list, got %s", m.screen)
	}
	if len(m.navStack) != 0 {
		t.Fatalf("expected empty stack after jump, got %d entries", len(m.navStack))
	}
	m.goBack()
	if m.screen != screenTaskList {
		t.Fatalf("back after jump must be a no-op, got %s", m.screen)
	}
}
