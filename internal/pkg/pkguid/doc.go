// Package pkguid generates unique identifiers.
//
// Stored upload files take numeric snowflake IDs; correlation IDs and audit
// events take UUIDv7 strings. Callers depend on the StringID and NumberID
// interfaces so tests can substitute deterministic generators.
package pkguid
