// Package core provides a small, stable facade over InstallGuard's analysis
// engine for external integrations. It re-exports a narrow API surface so
// other tools can depend on a stable import path without reaching into
// internal packages.
//
// Example:
//
//	res := core.Analyze(script)
//	if res.Verdict() == core.Dangerous { /* refuse to run */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
