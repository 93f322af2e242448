package installguard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cyberempirex/installguard/internal/about"
	"github.com/cyberempirex/installguard/internal/logging"
)

var (
	flagJSON      bool
	flagSARIF     bool
	flagTable     bool
	flagNoColor   bool
	flagFailOn    string
	flagDisable   string
	flagSamples   int
	flagHighlight bool
	flagDebug     bool
)

// rootCmd is the base Cobra command for the InstallGuard CLI.
var rootCmd = &cobra.Command{
	Use:   "installguard",
	Short: "Check shell install scripts before you run them",
	Long: "InstallGuard reads an install script or a list of commands without executing anything, " +
		"matches every line against risk rules and suspicious keywords, and prints a verdict.",
	Version:           about.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
			return runMenu(cmd)
		}
		return cmd.Help()
	},
}

// exitError ends the command with a specific status and no message.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the InstallGuard CLI. It should be called by the main package.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit status:
// 0 ok, 1 verdict at or above --fail-on, 2 usage or access error.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	resetFlags(rootCmd)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	err := rootCmd.Execute()
	logging.Sync()
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(errOut, "error:", err)
	return 2
}

// resetFlags restores every flag to its default so run can be called more
// than once in a process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output findings as a table")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit 1 at verdict dangerous|caution|warning|never (default dangerous)")
	rootCmd.PersistentFlags().StringVar(&flagDisable, "disable", "", "skip these rule IDs or keywords (comma-separated)")
	rootCmd.PersistentFlags().IntVar(&flagSamples, "samples", 0, "findings listed per tier in the text report (default 3)")
	rootCmd.PersistentFlags().BoolVar(&flagHighlight, "highlight", false, "syntax-highlight finding previews")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose logging on stderr")
}
