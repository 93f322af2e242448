package installguard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const installCmd = "go install github.com/cyberempirex/installguard@latest"

func ciTemplate(provider, target string) (path, content string, err error) {
	run := fmt.Sprintf("installguard analyze --json --fail-on caution '%s' | tee installguard-report.json", target)
	switch provider {
	case "github":
		path = filepath.Join(".github", "workflows", "installguard.yml")
		content = `name: InstallGuard
on: [push, pull_request]
jobs:
  analyze:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: '1.25'
      - run: ` + installCmd + `
      - run: installguard analyze --sarif --fail-on caution '` + target + `' > installguard.sarif
      - uses: github/codeql-action/upload-sarif@v3
        if: always()
        with:
          sarif_file: installguard.sarif
`
	case "gitlab":
		path = ".gitlab-ci.yml"
		content = `stages: [analyze]
installguard:
  stage: analyze
  image: golang:1.25
  script:
    - ` + installCmd + `
    - ` + run + `
  artifacts:
    when: always
    paths:
      - installguard-report.json
`
	case "bitbucket":
		path = "bitbucket-pipelines.yml"
		content = `pipelines:
  default:
    - step:
        name: InstallGuard
        image: golang:1.25
        caches:
          - go
        script:
          - ` + installCmd + `
          - ` + run + `
        artifacts:
          - installguard-report.json
`
	case "azure":
		path = "azure-pipelines.yml"
		content = `trigger:
- main

pool:
  vmImage: 'ubuntu-latest'

steps:
- task: GoTool@0
  inputs:
    version: '1.25.x'
- script: |
    ` + installCmd + `
    $(go env GOPATH)/bin/` + run + `
  displayName: 'InstallGuard'
- publish: installguard-report.json
  artifact: installguard-report
  condition: succeededOrFailed()
`
	default:
		return "", "", fmt.Errorf("unknown --provider %q. Supported: github, gitlab, bitbucket, azure", provider)
	}
	return path, content, nil
}

func init() {
	ci := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}
	rootCmd.AddCommand(ci)

	var provider, target string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline template for your provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, content, err := ciTemplate(strings.ToLower(provider), target)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "", "CI provider: github | gitlab | bitbucket | azure")
	initCmd.Flags().StringVar(&target, "target", "**/*.sh", "scripts to analyze (path or glob)")
	if err := initCmd.MarkFlagRequired("provider"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not mark --provider as required:", err)
	}
	ci.AddCommand(initCmd)
}
