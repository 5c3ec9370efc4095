// Package manifest reads the package.json files of a JavaScript monorepo
// (and pnpm-workspace.yaml where pnpm is used) into typed structures.
// Absent optional fields decode to empty values; fields with the wrong
// shape are reported as parse errors.
package manifest
