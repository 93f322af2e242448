package installguard

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/report"
	"github.com/cyberempirex/installguard/internal/source"
	"github.com/cyberempirex/installguard/internal/watch"
)

func init() {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-analyze a script every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current
			out := cmd.OutOrStdout()
			w, err := watch.New(watch.Config{
				Path:     args[0],
				Rules:    s.rules,
				Debounce: debounce,
				OnResult: func(doc *source.Document, res *engine.Result) {
					if s.format == "text" || s.format == "table" {
						fmt.Fprintf(out, "\n[%s] %s\n", time.Now().Format("15:04:05"), doc.Path)
					}
					if err := render(out, s, []report.Analysis{{Source: doc, Result: res}}); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
					}
				},
				OnError: func(err error) {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				},
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period after a change before re-analyzing")
	rootCmd.AddCommand(cmd)
}
