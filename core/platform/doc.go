// Package platform holds the generated Go bindings of the public
// schema: Row, Insert and Update shapes per table, enum types and typed
// wrappers for stored functions. Regenerate with "sitebook generate".
package platform
