// Package engine contains the risk-classification core of InstallGuard. It
// classifies lines against a rule set, aggregates findings for one script or
// command batch, and derives the overall verdict. It performs no I/O; callers
// supply text through the source package. External consumers should use the
// stable facade in pkg/core.
package engine
