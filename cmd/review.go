package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/lessons"
	"github.com/walterairs/just-remember/internal/session"
	"github.com/walterairs/just-remember/internal/ui"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review everything that is due",
	RunE:  runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
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
	autoStarted, err := gate.AutoStart(ctx, time.Now(), lessons.TriggerAuto)
	if err != nil {
		return fmt.Errorf("auto-start lessons: %w", err)
	}
	if len(autoStarted) > 0 {
		fmt.Printf("Auto-started %d lesson(s).\n", len(autoStarted))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess, err := session.Build(ctx, st.Items(), time.Now(), rng)
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}

	if len(sess.Items) == 0 {
		fmt.Println("No reviews are due right now.")
		summary, err := st.Items().LessonSummary(ctx)
		if err != nil {
			return fmt.Errorf("lesson summary: %w", err)
		}
		if n := summary[grammar.NotStarted]; n > 0 {
			fmt.Printf("%d items are waiting in lessons. Run 'just-remember lessons' to start them.\n", n)
		}
		return nil
	}

	recorder := session.NewRecorder(st.Items(), events)
	return ui.RunReview(sess, recorder, time.Now)
}
