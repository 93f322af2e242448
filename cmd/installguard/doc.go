// Package installguard provides the command-line interface for InstallGuard.
// It configures subcommands (analyze, quick, rules, watch, menu, etc.),
// merges flags with config files and maps verdicts onto exit codes.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/cyberempirex/installguard/cmd/installguard"
//	func main() { installguard.Execute() }
package installguard
