package installguard

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/report"
	"github.com/cyberempirex/installguard/internal/source"
)

func init() {
	cmd := &cobra.Command{
		Use:   "quick [command...]",
		Short: "Scan individual commands",
		Long: "Quick scans each argument as one command. Without arguments it reads one command per line " +
			"from stdin until a line reading DONE or end of input.",
		RunE: runQuick,
	}
	rootCmd.AddCommand(cmd)
}

func runQuick(cmd *cobra.Command, args []string) error {
	s := current
	cmds := args
	if len(cmds) == 0 {
		in := cmd.InOrStdin()
		prompt := ""
		if isTerminal(in) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Enter commands (type '%s' when finished):\n", source.DoneSentinel)
			prompt = "> "
		}
		read, err := source.ReadCommands(in, cmd.ErrOrStderr(), prompt)
		if err != nil {
			return err
		}
		cmds = read
	}

	res, err := engine.ScanCommands(s.rules, cmds)
	if errors.Is(err, engine.ErrNoCommands) {
		fmt.Fprintln(cmd.OutOrStdout(), "No commands entered.")
		return nil
	}
	if err != nil {
		return err
	}
	as := []report.Analysis{{Result: res}}
	if err := render(cmd.OutOrStdout(), s, as); err != nil {
		return err
	}
	return failure(s, as)
}
