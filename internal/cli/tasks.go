package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			var f store.TaskFilter
			if status != "" {
				st := model.Status(status)
				if !st.Valid() {
					return fmt.Errorf("invalid status %q (todo|in_progress|done)", status)
				}
				f.Status = &st
			}
			return printTaskListFiltered(cmd, s, f)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (todo|in_progress|done)")
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var (
		title, description, status, priority, due string
		projectID, tagID                          int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			t := model.Task{
				Title:       strings.TrimSpace(title),
				Description: description,
				Status:      model.Status(status),
				Priority:    model.Priority(priority),
				Due:         strings.TrimSpace(due),
			}
			if !t.Status.Valid() {
				return fmt.Errorf("invalid status %q (todo|in_progress|done)", status)
			}
			if !t.Priority.Valid() {
				return fmt.Errorf("invalid priority %q (low|medium|high)", priority)
			}
			if projectID != 0 {
				t.ProjectID = &projectID
			}
			if tagID != 0 {
				t.TagID = &tagID
			}
			if err := s.CreateTask(cmd.Context(), &t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created task %d: %s\n", t.ID, t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description (markdown)")
	cmd.Flags().StringVar(&status, "status", string(model.StatusTodo), "Status (todo|in_progress|done)")
	cmd.Flags().StringVar(&priority, "priority", string(model.PriorityMedium), "Priority (low|medium|high)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().Int64Var(&tagID, "tag", 0, "Tag id")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := app.openStore()
			if err != nil {
				return err
			}
			t, err := s.GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			t.Status = model.StatusDone
			if err := s.UpdateTask(cmd.Context(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "done: %s\n", t.Title)
			return nil
		},
	}
	return cmd
}

func newTasksRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := app.openStore()
			if err != nil {
				return err
			}
			if err := s.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", id)
			return nil
		},
	}
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printTaskList(cmd *cobra.Command, s store.Store) error {
	return printTaskListFiltered(cmd, s, store.TaskFilter{})
}

func printTaskListFiltered(cmd *cobra.Command, s store.Store, f store.TaskFilter) error {
	tasks, err := s.ListTasks(cmd.Context(), f)
	if err != nil {
		return err
	}
	projects, err := s.ListProjects(cmd.Context())
	if err != nil {
		return err
	}
	tags, err := s.ListTags(cmd.Context())
	if err != nil {
		return err
	}
	projectNames := map[int64]string{}
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	tagNames := map[int64]string{}
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRI\tDUE\tPROJECT\tTAG")
	for _, t := range tasks {
		ref := func(id *int64, names map[int64]string) string {
			if id == nil {
				return "-"
			}
			if n, ok := names[*id]; ok {
				return n
			}
			return "#" + strconv.FormatInt(*id, 10)
		}
		due := t.Due
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Status.Label(), t.Priority.Label(), due,
			ref(t.ProjectID, projectNames), ref(t.TagID, tagNames))
	}
	return w.Flush()
}
