package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/lessons"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Move waiting items into the review queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		events, err := st.Events()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		gate := lessons.NewGate(st.Items(), st.Settings(), events)

		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit, err = gate.DailyLimit(ctx)
			if err != nil {
				return fmt.Errorf("read daily lesson limit: %w", err)
			}
		}

		started, err := gate.Start(ctx, limit, time.Now())
		if err != nil {
			return fmt.Errorf("start lessons: %w", err)
		}

		if len(started) == 0 {
			fmt.Println("No items are waiting for lessons.")
			return nil
		}

		fmt.Printf("Started %d lesson(s):\n", len(started))
		for _, item := range started {
			fmt.Printf("  %s — %s\n", item.Term, item.Meaning)
		}

		summary, err := gate.Summary(ctx)
		if err != nil {
			return fmt.Errorf("lesson summary: %w", err)
		}
		if n := summary[grammar.NotStarted]; n > 0 {
			fmt.Printf("%d item(s) still waiting.\n", n)
		}
		return nil
	},
}

func init() {
	lessonsCmd.Flags().Int("limit", 0, "How many lessons to start (0 uses the daily_lesson_limit setting)")
}
