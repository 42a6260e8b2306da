// Package core defines the shared document model of the Dicta compiler.
//
// This package contains:
//   - The Value variant (Int, Text, Dict)
//   - The ordered Dict mapping and its overwrite semantics
//   - The canonical JSON encoding of a document
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
