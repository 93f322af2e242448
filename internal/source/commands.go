package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DoneSentinel ends interactive command entry, matched case-insensitively.
const DoneSentinel = "DONE"

// ReadCommands collects one command per line from r until DoneSentinel or EOF.
// prompt is written to w before each line when both are non-empty. Entries are
// trimmed and blank ones dropped.
func ReadCommands(r io.Reader, w io.Writer, prompt string) ([]string, error) {
	var cmds []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if w != nil && prompt != "" {
			fmt.Fprint(w, prompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, DoneSentinel) {
			break
		}
		if line != "" {
			cmds = append(cmds, line)
		}
	}
	if err := sc.Err(); err != nil {
		return cmds, fmt.Errorf("read commands: %w", err)
	}
	return cmds, nil
}
