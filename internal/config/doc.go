// Package config is a deliberately thin JSON-backed settings store for the
// editor core and Dock Manager, read and mutated via path queries rather
// than a schema-validated struct tree.
//
// The teacher's own internal/config (internal/config/doc.go in the
// teacher repository) is a seven-layer env/TOML/JSON/schema/watcher system
// built entirely on encoding/json. This module does not reproduce that
// machinery: JSON configuration plumbing beyond the loader contract is
// explicitly out of this module's scope (see the "PURPOSE & SCOPE"
// discussion this module's requirements document carries forward), so
// this package instead wires the gjson/sjson/pretty trio the teacher's
// go.mod already carries as tcell-unrelated indirect requires but never
// imports directly: gjson.Get for read-path path queries, sjson.Set for
// write-path mutation, and pretty.Pretty to format the saved document.
//
// Kept from the teacher: the flat errors.New sentinel-var convention
// (internal/config/errors.go) rather than a validation framework.
package config
