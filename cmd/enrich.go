package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/enrich"
	"github.com/walterairs/just-remember/internal/llm"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill missing usage notes and examples with an LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := llm.ConfigFromEnv()
		if errors.Is(err, llm.ErrNotConfigured) {
			fmt.Println("No LLM configured. Set JR_OPENAI_API_KEY to enable enrichment.")
			return nil
		}
		if err != nil {
			return err
		}
		provider, err := llm.NewOpenAIProvider(cfg)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		apply, _ := cmd.Flags().GetBool("apply")
		report, err := enrich.NewService(st.Items(), provider).Run(cmd.Context(), apply)
		if err != nil {
			return fmt.Errorf("enrich: %w", err)
		}

		fmt.Printf("Suggested %d, applied %d, failed %d.\n", report.Suggested, report.Applied, report.Failed)
		if !apply && report.Suggested > 0 {
			fmt.Println("Dry run: re-run with --apply to persist suggestions.")
		}
		return nil
	},
}

func init() {
	enrichCmd.Flags().Bool("apply", false, "Write suggestions back to the store")
}
