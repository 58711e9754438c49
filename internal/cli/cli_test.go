package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTasksAddListDoneRm(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "tasks", "add", "--title", "Write report", "--priority", "high")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "created task 1") {
		t.Fatalf("add output: %q", out)
	}

	out, err = runCLI(t, dir, "tasks", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Write report") || !strings.Contains(out, "High") {
		t.Fatalf("list output: %q", out)
	}

	if _, err := runCLI(t, dir, "tasks", "done", "1"); err != nil {
		t.Fatalf("done: %v", err)
	}
	out, err = runCLI(t, dir, "tasks", "list", "--status", "done")
	if err != nil {
		t.Fatalf("list done: %v", err)
	}
	if !strings.Contains(out, "Write report") {
		t.Fatalf("done task missing from filtered list: %q", out)
	}

	if _, err := runCLI(t, dir, "tasks", "rm", "1"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	out, err = runCLI(t, dir, "tasks", "list")
	if err != nil {
		t.Fatalf("list after rm: %v", err)
	}
	if strings.Contains(out, "Write report") {
		t.Fatalf("deleted task still listed: %q", out)
	}
}

func TestTasksAddRejectsBadEnums(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCLI(t, dir, "tasks", "add", "--title", "x", "--status", "bogus"); err == nil {
		t.Fatalf("expected invalid status error")
	}
	if _, err := runCLI(t, dir, "tasks", "add", "--title", "x", "--priority", "asap"); err == nil {
		t.Fatalf("expected invalid priority error")
	}
}

func TestProjectsAndTags(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "projects", "add", "--name", "Work", "--color", "#336699"); err != nil {
		t.Fatalf("projects add: %v", err)
	}
	if _, err := runCLI(t, dir, "projects", "add", "--name", "Work"); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	out, err := runCLI(t, dir, "projects", "list")
	if err != nil {
		t.Fatalf("projects list: %v", err)
	}
	if !strings.Contains(out, "Work") || !strings.Contains(out, "#336699") {
		t.Fatalf("projects list output: %q", out)
	}

	if _, err := runCLI(t, dir, "tags", "add", "--name", "urgent"); err != nil {
		t.Fatalf("tags add: %v", err)
	}
	if _, err := runCLI(t, dir, "tags", "rm", "1"); err != nil {
		t.Fatalf("tags rm: %v", err)
	}
	out, err = runCLI(t, dir, "tags", "list")
	if err != nil {
		t.Fatalf("tags list: %v", err)
	}
	if strings.Contains(out, "urgent") {
		t.Fatalf("deleted tag still listed: %q", out)
	}
}

func TestInvalidIDArgument(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCLI(t, dir, "tasks", "rm", "zero"); err == nil {
		t.Fatalf("expected invalid id error")
	}
	if _, err := runCLI(t, dir, "tasks", "done", "999"); err == nil {
		t.Fatalf("expected not-found error")
	}
}
