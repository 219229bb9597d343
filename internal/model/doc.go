// Package model defines the data structures for a cross-document analysis
// report and the read-only queries the dashboard performs against it.
//
// A Report is loaded once at process start and never mutated afterwards.
// It is passed by pointer into every projection and renderer rather than
// held as a global, so tests can supply fixtures without shared state.
//
// Design decision: dynamic shapes that appear in the upstream data (for
// example non_compliant entries that are sometimes objects and sometimes
// bare file names) are resolved into a single normalized form by the
// loader package before a Report is constructed. Code in this package and
// above it never branches on the wire shape.
package model
