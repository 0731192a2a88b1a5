// Package cxx provides the structural view of a C++ header tree.
//
// It defines the declaration stream consumed by the walker
// (declarations with ordered fields, each field carrying a spelling
// and a coarse kind) and a lightweight built-in scanner that produces
// that stream from header files without a real C++ frontend.
//
// Key types:
//   - TypeDescriptor: spelling + coarse Kind of a field type
//   - Declaration: named class/struct with ordered fields
//   - Scanner: walks a directory tree and yields declarations
package cxx
