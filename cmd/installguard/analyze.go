package installguard

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/logging"
	"github.com/cyberempirex/installguard/internal/report"
	"github.com/cyberempirex/installguard/internal/source"
)

var (
	flagRepo     string
	flagRev      string
	flagBaseline string
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze <path|glob|->...",
		Short: "Analyze install scripts",
		Long: "Analyze reads each script, classifies every line and prints a verdict per script. " +
			"Globs such as 'scripts/**/*.sh' are expanded; '-' reads the script from stdin. " +
			"With --rev the paths are read from that git revision instead of the working tree.",
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagRepo, "repo", ".", "repository to read from when --rev is set")
	cmd.Flags().StringVar(&flagRev, "rev", "", "read scripts as committed at this revision (branch, tag or hash)")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "hide findings recorded in this baseline file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s := current
	docs, failed := loadDocuments(cmd, args)

	baselinePath := pickString(flagBaseline, s.local.Baseline, s.global.Baseline)
	var base report.Baseline
	if baselinePath != "" {
		b, err := report.LoadBaseline(baselinePath)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		base = b
	}

	as := make([]report.Analysis, 0, len(docs))
	for _, doc := range docs {
		res := engine.Scan(s.rules, doc.Lines)
		if baselinePath != "" {
			res = report.FilterNew(res, base, doc.Path)
		}
		logging.L().Debugw("analyzed", "path", doc.Path, "lines", res.Lines, "verdict", res.Verdict().String())
		as = append(as, report.Analysis{Source: doc, Result: res})
	}
	if len(as) > 0 {
		if err := render(cmd.OutOrStdout(), s, as); err != nil {
			return err
		}
	}
	if failed {
		return exitError{code: 2}
	}
	return failure(s, as)
}

// loadDocuments reads every target. Access errors are reported on stderr and
// the remaining targets are still loaded.
func loadDocuments(cmd *cobra.Command, args []string) ([]*source.Document, bool) {
	var (
		docs   []*source.Document
		failed bool
	)
	fail := func(err error) {
		failed = true
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	}

	if flagRev != "" {
		for _, p := range args {
			doc, err := source.ReadGitRevision(flagRepo, flagRev, p)
			if err != nil {
				fail(err)
				continue
			}
			docs = append(docs, doc)
		}
		return docs, failed
	}

	var patterns []string
	for _, a := range args {
		if a == "-" {
			doc, err := readStdin(cmd.InOrStdin())
			if err != nil {
				fail(err)
				continue
			}
			docs = append(docs, doc)
			continue
		}
		patterns = append(patterns, a)
	}
	if len(patterns) == 0 {
		return docs, failed
	}
	paths, err := source.ExpandTargets(patterns)
	if err != nil {
		fail(err)
		return docs, failed
	}
	for _, p := range paths {
		doc, err := source.ReadFile(p)
		if err != nil {
			fail(err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, failed
}

func readStdin(r io.Reader) (*source.Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &source.AccessError{Path: "stdin", Err: err}
	}
	return source.FromBytes(source.KindStdin, "stdin", b)
}

