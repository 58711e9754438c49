package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskdeck/internal/model"
)

func newTagsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Tag commands",
	}
	cmd.AddCommand(newTagsListCmd(app))
	cmd.AddCommand(newTagsAddCmd(app))
	cmd.AddCommand(newTagsRmCmd(app))
	return cmd
}

func newTagsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			tags, err := s.ListTags(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLOR")
			for _, t := range tags {
				color := t.Color
				if color == "" {
					color = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Name, color)
			}
			return w.Flush()
		},
	}
}

func newTagsAddCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			t := model.Tag{Name: name, Color: color}
			if err := s.CreateTag(cmd.Context(), &t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created tag %d: %s\n", t.ID, t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tag name")
	cmd.Flags().StringVar(&color, "color", "", "Color (#RRGGBB)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTagsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tag-id>",
		Short: "Delete a tag (tasks keep existing, untagged)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", args[0])
			}
			s, err := app.openStore()
			if err != nil {
				return err
			}
			if err := s.DeleteTag(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted tag %d\n", id)
			return nil
		},
	}
}
