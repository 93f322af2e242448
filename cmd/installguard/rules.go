package installguard

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/types"
)

func init() {
	var idsOnly bool
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List risk rules and suspicious keywords",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs := current.rules
			w := cmd.OutOrStdout()
			if idsOnly {
				for _, id := range rs.IDs() {
					fmt.Fprintln(w, id)
				}
				return nil
			}
			table := tablewriter.NewWriter(w)
			table.Header("TIER", "ID", "DESCRIPTION")
			for _, t := range types.Tiers() {
				for _, r := range rs.Rules(t) {
					if err := table.Append([]string{t.String(), r.ID, r.Description}); err != nil {
						return err
					}
				}
			}
			if err := table.Render(); err != nil {
				return err
			}
			fmt.Fprintf(w, "\nKeywords: %s\n", strings.Join(rs.Keywords(), ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "print rule IDs only, one per line")
	rootCmd.AddCommand(cmd)
}
