package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/grammar"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List grammar items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		items := st.Items()
		var rows []grammar.Item

		switch {
		case mustBool(cmd, "due"):
			rows, err = items.ListDue(ctx, time.Now())
		case mustString(cmd, "stage") != "":
			stage, perr := grammar.ParseStage(mustString(cmd, "stage"))
			if perr != nil {
				return perr
			}
			rows, err = items.ListByStage(ctx, stage)
		case mustString(cmd, "status") != "":
			status, perr := grammar.ParseLessonStatus(mustString(cmd, "status"))
			if perr != nil {
				return perr
			}
			rows, err = items.ListByLessonStatus(ctx, status)
		default:
			rows, err = items.ListAll(ctx)
		}
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No items.")
			return nil
		}

		for _, item := range rows {
			due := "-"
			if item.NextReviewAt != nil {
				due = item.NextReviewAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%4d  %-14s %-12s %-11s due %-16s  %s\n",
				item.ID, item.Term, item.Stage, item.LessonStatus, due, item.Meaning)
		}
		fmt.Printf("%d item(s).\n", len(rows))
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("due", false, "Only items due for review right now")
	listCmd.Flags().String("stage", "", `Filter by stage (e.g. "Guru I")`)
	listCmd.Flags().String("status", "", `Filter by lesson status (e.g. "In Progress")`)
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
