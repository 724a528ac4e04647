// Package store provides file-based access to the pipeline's two resources.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Input operands (OperandFileStore)
//   - The computed result (ResultFileStore)
//
// Each store is rooted at a directory and addresses a single named resource
// inside it. File handles are opened per call and closed before returning,
// on success and failure alike. Stores are not safe for concurrent use.
package store
