// Package workspace discovers the workspaces of a JavaScript monorepo from
// the glob patterns declared by its root manifest, loads their manifests,
// and selects the ones that depend on a given package.
package workspace
