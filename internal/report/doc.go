// Package report provides non-interactive renderings of an analysis
// report.
//
// This package contains writers for the supported output formats:
//   - TextWriter: human-readable text for terminal display and piping
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output. They render the
// same internal/view projections as the interactive dashboard, so the
// two surfaces always agree on content, ordering, and empty states.
package report
