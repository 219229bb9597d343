package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/doclens/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
//
// The normalized report is emitted, not the raw input file: absent
// sections appear as empty collections and the object-or-string
// non_compliant variants are already resolved, so consumers never
// re-implement the normalization rules.
type JSONWriter struct {
	baseWriter

	// version is embedded in the output metadata.
	version string

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		version:    version,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps the normalized report with output metadata.
type JSONReport struct {
	// Version is the doclens version that produced this output.
	Version string `json:"version"`

	// Report is the normalized analysis report.
	Report *model.Report `json:"report"`
}

// Write outputs the report as JSON with a metadata wrapper.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	wrapped := JSONReport{Version: w.version, Report: report}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(wrapped, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(wrapped)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
