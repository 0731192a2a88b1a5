// Package diagnostic provides structured, non-fatal findings for the
// schema generator.
//
// Key capabilities:
//   - Text-fallback warnings for unrecognized or malformed field types
//   - Skipped-declaration notes (anonymous classes)
//   - A one-line-per-finding summary for the CLI
package diagnostic
