package installguard

import (
	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/about"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "about",
		Short: "Show tool and creator information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return about.Default().Render(cmd.OutOrStdout(), current.noColor)
		},
	})
}
