// Package dispatch builds package-manager command lines scoped to a set of
// workspaces and runs them through a shell, propagating the exit code.
package dispatch
