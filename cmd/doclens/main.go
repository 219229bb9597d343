// Package main provides the entry point for the doclens CLI.
//
// doclens renders a pre-computed cross-document analysis report
// (terminology, compliance, redundancy, recommendations) as an
// interactive terminal dashboard or as text, JSON, or markdown output.
//
// Usage:
//
//	doclens view [report-file]
//	doclens export --format markdown <report-file>...
//
// See --help for all available options.
package main

// main is the entry point for doclens.
func main() {
	Execute()
}
