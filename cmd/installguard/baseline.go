package installguard

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines of reviewed findings",
	}

	var output string
	update := &cobra.Command{
		Use:   "update <path|glob>...",
		Short: "Record the current findings of scripts as reviewed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current
			path := pickString(output, s.local.Baseline, s.global.Baseline)
			if path == "" {
				path = report.DefaultBaselineFile
			}
			docs, failed := loadDocuments(cmd, args)
			for _, doc := range docs {
				res := engine.Scan(s.rules, doc.Lines)
				if err := report.SaveBaseline(path, doc.Path, res); err != nil {
					return err
				}
			}
			if failed {
				return exitError{code: 2}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated (%d scripts) in %s.\n", len(docs), path)
			return nil
		},
	}
	update.Flags().StringVar(&output, "output", "", "baseline file (default "+report.DefaultBaselineFile+")")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
