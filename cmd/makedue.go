package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var makeDueCmd = &cobra.Command{
	Use:   "make-due",
	Short: "Reschedule every active item to now (debug helper)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		n, err := st.Items().MakeAllDue(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("make items due: %w", err)
		}
		fmt.Printf("%d item(s) are now due.\n", n)
		return nil
	},
}
