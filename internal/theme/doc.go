// Package theme holds the preset catalog, the colour derivation rules and the
// applier that pushes a resolved theme into a set of style variables.
// Presets are embedded in the binary and never change at runtime.
package theme
