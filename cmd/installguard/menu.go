package installguard

import (
	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/about"
	"github.com/cyberempirex/installguard/internal/tui"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd)
		},
	})
}

func runMenu(_ *cobra.Command) error {
	s := current
	return tui.Run(tui.Options{
		Rules:    s.rules,
		Report:   s.reportOptions(nil),
		Identity: about.Default(),
	})
}
