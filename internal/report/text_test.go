package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nao1215/doclens/internal/model"
	"github.com/nao1215/doclens/internal/view"
)

// TestTextWriter tests the human-readable report writer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes all six sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		n, err := w.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, buffer has %d", n, buf.Len())
		}

		output := buf.String()
		for _, section := range []string{
			"Documentation Analysis Overview",
			"Document Explorer",
			"Terminology Hub",
			"Best Practices Compliance Dashboard",
			"Redundancy Analysis and Information Gaps",
			"Recommendations for Improvement",
		} {
			if !strings.Contains(output, section) {
				t.Errorf("expected output to contain section %q", section)
			}
		}
	})

	t.Run("writes summary and metrics", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Two documents analyzed.") {
			t.Error("expected output to contain the summary")
		}
		if !strings.Contains(output, "Documents Analyzed") {
			t.Error("expected output to contain the document count metric")
		}
	})

	t.Run("writes per-document details", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "guide.md") {
			t.Error("expected output to contain guide.md")
		}
		if !strings.Contains(output, view.MsgDocCompliant) {
			t.Error("expected output to contain the compliant message for guide.md")
		}
		if !strings.Contains(output, "Heading Structure: Multiple H1 headings found.") {
			t.Error("expected output to contain api.md's compliance issue")
		}
	})

	t.Run("frequency table is sorted descending", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		start := strings.Index(output, "Term Frequency")
		end := strings.Index(output, "Inconsistencies")
		if start == -1 || end == -1 || start > end {
			t.Fatalf("could not locate the frequency table in output")
		}
		section := output[start:end]

		sdk := strings.Index(section, "sdk")
		cli := strings.Index(section, "cli")
		api := strings.Index(section, "api")
		if sdk == -1 || cli == -1 || api == -1 {
			t.Fatal("expected all terms in the frequency table")
		}
		if !(sdk < cli && cli < api) {
			t.Errorf("frequency order wrong: sdk=%d cli=%d api=%d", sdk, cli, api)
		}
	})

	t.Run("numbers recommendations from one", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "1. Add a glossary") {
			t.Error("expected first recommendation numbered 1")
		}
		if !strings.Contains(output, "2. Merge doc A and B") {
			t.Error("expected second recommendation numbered 2")
		}
	})

	t.Run("empty report shows every empty-state message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(model.NewReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, msg := range []string{
			model.DefaultSummary,
			view.MsgSelectDocument,
			view.MsgNoGlossary,
			view.MsgNoSynonyms,
			view.MsgNoFrequencies,
			view.MsgNoInconsistencies,
			view.MsgNoComplianceData,
			view.MsgNoOverlaps,
			view.MsgNoRedundant,
			view.MsgNoMissing,
			view.MsgNoRecommendations,
		} {
			if !strings.Contains(output, msg) {
				t.Errorf("expected output to contain %q", msg)
			}
		}
	})
}
