package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every item to Not Started / Apprentice I",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Println("This wipes all progress: stages, schedules, and answer counts.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := st.Items().ResetAll(cmd.Context()); err != nil {
			return fmt.Errorf("reset items: %w", err)
		}
		fmt.Println("All items reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
