package core

// ManifestFile is the name of the npm package manifest in every workspace.
const ManifestFile = "package.json"

// PnpmWorkspaceFile declares workspace globs for pnpm monorepos.
const PnpmWorkspaceFile = "pnpm-workspace.yaml"

// ConfigFile is the optional per-repository configuration file.
const ConfigFile = ".wsi.yaml"
