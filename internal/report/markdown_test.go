package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nao1215/doclens/internal/model"
	"github.com/nao1215/doclens/internal/view"
)

// TestMarkdownWriter tests the markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes all section headings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, heading := range []string{
			"# Documentation Analysis Report",
			"## Key Statistics",
			"## Document Explorer",
			"## Terminology Hub",
			"### Glossary",
			"### Synonym Map",
			"### Term Frequency",
			"### Inconsistencies",
			"## Best Practices Compliance Dashboard",
			"## Redundancy Analysis and Information Gaps",
			"## Recommendations for Improvement",
		} {
			if !strings.Contains(output, heading) {
				t.Errorf("expected output to contain heading %q", heading)
			}
		}
	})

	t.Run("embeds a mermaid term chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected output to contain a mermaid code block")
		}
		if !strings.Contains(output, "Most Frequent Terms") {
			t.Error("expected chart title in output")
		}
		if !strings.Contains(output, "pie") {
			t.Error("expected a pie directive in the chart")
		}
	})

	t.Run("renders compliance tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "### Heading Structure") {
			t.Error("expected a title-cased practice heading")
		}
		if !strings.Contains(output, "Multiple H1 headings found.") {
			t.Error("expected the non-compliance reason")
		}
	})

	t.Run("numbers recommendations as plain text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
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

	t.Run("empty report omits the chart and shows empty states", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(model.NewReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "```mermaid") {
			t.Error("expected no mermaid block for an empty report")
		}
		for _, msg := range []string{
			view.MsgSelectDocument,
			view.MsgNoGlossary,
			view.MsgNoComplianceData,
			view.MsgNoRecommendations,
		} {
			if !strings.Contains(output, msg) {
				t.Errorf("expected output to contain %q", msg)
			}
		}
	})
}
