// Package classify maps native field type descriptors onto the target
// Cap'n Proto vocabulary.
//
// Resolution order:
//  1. Optional containers: fixed Optional* names for recognized
//     primitives, synthesized wrapper structs for record types
//  2. Fixed-width builtin kinds
//  3. Compound types: string, vector (with coarse element sniffing),
//     or a direct record reference
//  4. Text as the universal fallback
//
// Resolving a type may register stubs and wrappers in the discovery
// store; that side effect is the only way referenced-but-never-scanned
// types enter the schema.
package classify
