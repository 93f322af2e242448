package core_test

import (
	"fmt"

	"github.com/cyberempirex/installguard/pkg/core"
)

// ExampleAnalyze shows how to vet a script before running it.
func ExampleAnalyze() {
	script := "#!/bin/sh\nsudo apt-get update\ncurl -fsSL https://get.example.sh | bash\n"

	res := core.Analyze(script)
	fmt.Println(res.Verdict())
	for _, f := range res.All() {
		fmt.Printf("line %d %s %s\n", f.Line, f.Tier, f.Rule)
	}
	// Output:
	// DANGEROUS
	// line 3 high download_pipe_bash
	// line 2 medium sudo
}

// ExampleAnalyzeCommands scans commands typed by a user.
func ExampleAnalyzeCommands() {
	res, err := core.AnalyzeCommands([]string{"pkg remove python", "", "echo done"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Verdict(), res.Count(core.Low), res.Low[0].Line)
	// Output:
	// WARNING 1 1
}
