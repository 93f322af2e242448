package installguard

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/types"
)

const (
	rulesBegin = "<!-- BEGIN:RULES -->"
	rulesEnd   = "<!-- END:RULES -->"
)

// gendocs regenerates the rules section in README.md between the markers
// <!-- BEGIN:RULES --> and <!-- END:RULES -->.
func init() {
	var path string
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate the README rules section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			nb, err := replaceRulesSection(b, rules.Default())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := os.WriteFile(path, nb, 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "readme", "README.md", "file containing the rules markers")
	rootCmd.AddCommand(cmd)
}

func replaceRulesSection(b []byte, rs *rules.RuleSet) ([]byte, error) {
	start := []byte(rulesBegin)
	end := []byte(rulesEnd)
	i := bytes.Index(b, start)
	j := bytes.Index(b, end)
	if i < 0 || j < 0 || j <= i {
		return nil, fmt.Errorf("markers not found")
	}

	var out strings.Builder
	out.WriteString("\nRules by tier (run `installguard rules` for the live list):\n\n")
	for _, t := range types.Tiers() {
		out.WriteString("- " + strings.ToUpper(t.String()) + ":\n")
		for _, r := range rs.Rules(t) {
			fmt.Fprintf(&out, "  - `%s`: %s\n", r.ID, r.Description)
		}
	}
	out.WriteString("- Keywords: " + strings.Join(rs.Keywords(), ", ") + "\n")

	var nb bytes.Buffer
	nb.Write(b[:i])
	nb.Write(start)
	nb.WriteString("\n")
	nb.WriteString(out.String())
	nb.Write(end)
	nb.Write(b[j+len(end):])
	return nb.Bytes(), nil
}
