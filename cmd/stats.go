package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		summary, err := stats.NewService(st.Items()).Summarize(ctx, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Items:    %d\n", summary.TotalItems)
		fmt.Printf("Reviews:  %d (%d correct, %.1f%% accuracy)\n",
			summary.TotalReviews, summary.TotalCorrect, summary.Accuracy)
		fmt.Printf("Due now:  %d\n", summary.DueNow)

		fmt.Println("\nStages:")
		for _, stage := range grammar.Stages() {
			fmt.Printf("  %-12s %d\n", stage, summary.StageCounts[stage])
		}

		fmt.Println("\nLessons:")
		for _, status := range grammar.LessonStatuses() {
			fmt.Printf("  %-12s %d\n", status, summary.Lessons[status])
		}
		return nil
	},
}
