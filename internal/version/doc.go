// Package version exposes build metadata (semantic version, commit, build
// time) injected via ldflags and a helper that attaches a cobra `version`
// subcommand to a root command.
package version
