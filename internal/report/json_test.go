package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestJSONWriter tests the machine-readable report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("output round-trips with version metadata", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "v1.2.3")

		n, err := w.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, buffer has %d", n, buf.Len())
		}

		var decoded JSONReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.Version != "v1.2.3" {
			t.Errorf("version = %q, want v1.2.3", decoded.Version)
		}
		if decoded.Report == nil {
			t.Fatal("expected embedded report")
		}
		if decoded.Report.Summary != "Two documents analyzed." {
			t.Errorf("summary = %q", decoded.Report.Summary)
		}
		if got := decoded.Report.Documents.Len(); got != 2 {
			t.Errorf("documents = %d, want 2", got)
		}
	})

	t.Run("compact output is a single line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, "v1.0.0").Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := strings.Count(buf.String(), "\n"); got != 1 {
			t.Errorf("newlines = %d, want 1 (trailing only)", got)
		}
	})

	t.Run("pretty print indents the output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "v1.0.0", WithPrettyPrint())
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  \"version\"") {
			t.Error("expected indented output")
		}
	})

	t.Run("custom indent is honored", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "v1.0.0", WithIndent("", "\t"))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n\t\"version\"") {
			t.Error("expected tab-indented output")
		}
	})
}
