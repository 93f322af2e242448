// Package config loads InstallGuard configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags and files
// into run options.
package config
