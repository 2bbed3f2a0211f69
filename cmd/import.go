package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/ingest"
	"github.com/walterairs/just-remember/internal/lessons"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import grammar items from a TSV or JSON deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".json":
				format = "json"
			default:
				format = "tsv"
			}
		}
		if format != "tsv" && format != "json" {
			return fmt.Errorf("unknown format %q (want tsv or json)", format)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		now := time.Now()
		importer := ingest.NewImporter(st.Items())

		var report ingest.Report
		if format == "json" {
			report, err = importer.ImportJSON(ctx, data, now)
		} else {
			report, err = importer.ImportTSV(ctx, data, now)
		}
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("Imported %d item(s), skipped %d.\n", report.Created, report.Skipped)

		if noStart, _ := cmd.Flags().GetBool("no-auto-start"); noStart {
			return nil
		}

		events, err := st.Events()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		gate := lessons.NewGate(st.Items(), st.Settings(), events)
		started, err := gate.AutoStart(ctx, now, lessons.TriggerImport)
		if err != nil {
			return fmt.Errorf("auto-start lessons: %w", err)
		}
		if len(started) > 0 {
			fmt.Printf("Auto-started %d lesson(s).\n", len(started))
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("format", "", "Input format: tsv or json (default: by file extension)")
	importCmd.Flags().Bool("no-auto-start", false, "Skip auto-starting lessons after the import")
}
