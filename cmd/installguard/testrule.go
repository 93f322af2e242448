package installguard

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/report"
	"github.com/cyberempirex/installguard/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "test-rule <id|keyword>",
		Short: "Run a single rule or keyword against text on stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs := rules.Default()
			one, ok := rs.Only(args[0])
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown rule or keyword: %s\n", args[0])
				fmt.Fprintf(cmd.ErrOrStderr(), "available: %s\n", strings.Join(append(rs.IDs(), rs.Keywords()...), ", "))
				return exitError{code: 2}
			}
			doc, err := readStdin(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res := engine.Scan(one, doc.Lines)
			return report.PrintTable(cmd.OutOrStdout(), res, report.Options{NoColor: current.noColor})
		},
	}
	// help message includes rule IDs
	cmd.Long = "Available rules: " + strings.Join(rules.Default().IDs(), ", ")
	rootCmd.AddCommand(cmd)
}
