package tui

import (
	"strings"
	"testing"

	"github.com/nao1215/doclens/internal/model"
	"github.com/nao1215/doclens/internal/view"
)

// testReport builds a small report exercised by the page renderers.
func testReport() *model.Report {
	report := model.NewReport()
	report.Summary = "Two documents analyzed."
	report.Documents.Names = []string{"guide.md", "api.md"}
	report.Documents.Records["guide.md"] = model.DocumentRecord{
		H1Count:        1,
		H2Count:        3,
		SectionLengths: []int{100, 200},
		HasLists:       true,
	}
	report.Documents.Records["api.md"] = model.DocumentRecord{H1Count: 2}

	report.Terminology.TermOrder = []string{"api"}
	report.Terminology.Terms = map[string]model.Term{
		"api": {Frequency: 5, Documents: []string{"guide.md"}},
	}
	report.Terminology.GlossaryOrder = []string{"api"}
	report.Terminology.Glossary = map[string]string{
		"api": "Application Programming Interface",
	}

	report.Compliance.Practices = []string{"heading_structure"}
	report.Compliance.Checks["heading_structure"] = model.PracticeCheck{
		Compliant: []string{"guide.md"},
		NonCompliant: []model.NonCompliantEntry{
			{File: "api.md", Reason: "Multiple H1 headings found."},
		},
	}

	report.Redundancy.Overlaps = []model.Overlap{
		{Topic: "Authentication", Documents: []string{"guide.md", "api.md"}},
	}
	report.Recommendations = []string{"Add a glossary"}

	return report
}

// TestRenderOverview tests the Overview page body.
func TestRenderOverview(t *testing.T) {
	t.Parallel()

	styles := NewStyles(LightTheme())
	output := renderOverview(styles, view.ProjectOverview(testReport()))

	if !strings.Contains(output, "Two documents analyzed.") {
		t.Error("expected the summary")
	}
	if !strings.Contains(output, "Documents Analyzed") {
		t.Error("expected the documents metric")
	}
}

// TestRenderDocuments tests the Document Explorer page body.
func TestRenderDocuments(t *testing.T) {
	t.Parallel()

	styles := NewStyles(LightTheme())

	t.Run("no selection shows the prompt", func(t *testing.T) {
		t.Parallel()

		output := renderDocuments(styles, testReport(), -1)
		if !strings.Contains(output, view.MsgSelectDocument) {
			t.Error("expected the selection prompt")
		}
		if !strings.Contains(output, "guide.md") {
			t.Error("expected the document picker")
		}
	})

	t.Run("selection shows structure and compliance", func(t *testing.T) {
		t.Parallel()

		output := renderDocuments(styles, testReport(), 0)
		if !strings.Contains(output, "Details for: guide.md") {
			t.Error("expected the detail heading")
		}
		if !strings.Contains(output, "H1 Headings") {
			t.Error("expected the structure table")
		}
		if !strings.Contains(output, view.MsgDocCompliant) {
			t.Error("expected the compliant message for guide.md")
		}
	})

	t.Run("non-compliant document lists its issues", func(t *testing.T) {
		t.Parallel()

		output := renderDocuments(styles, testReport(), 1)
		if !strings.Contains(output, view.MsgDocHasIssues) {
			t.Error("expected the issue intro for api.md")
		}
		if !strings.Contains(output, "Multiple H1 headings found.") {
			t.Error("expected the issue reason")
		}
	})

	t.Run("empty report shows only the prompt", func(t *testing.T) {
		t.Parallel()

		output := renderDocuments(styles, model.NewReport(), -1)
		if !strings.Contains(output, view.MsgSelectDocument) {
			t.Error("expected the selection prompt")
		}
	})
}

// TestRenderTerminology tests the Terminology Hub page body.
func TestRenderTerminology(t *testing.T) {
	t.Parallel()

	styles := NewStyles(LightTheme())

	t.Run("renders the populated sections", func(t *testing.T) {
		t.Parallel()

		output := renderTerminology(styles, view.ProjectTerminology(testReport()))
		if !strings.Contains(output, "Application Programming Interface") {
			t.Error("expected the glossary definition")
		}
		if !strings.Contains(output, view.MsgNoSynonyms) {
			t.Error("expected the synonym empty state")
		}
		if !strings.Contains(output, view.MsgNoInconsistencies) {
			t.Error("expected the inconsistencies empty state")
		}
	})

	t.Run("empty report shows all empty states", func(t *testing.T) {
		t.Parallel()

		output := renderTerminology(styles, view.ProjectTerminology(model.NewReport()))
		for _, msg := range []string{
			view.MsgNoGlossary,
			view.MsgNoSynonyms,
			view.MsgNoFrequencies,
			view.MsgNoInconsistencies,
		} {
			if !strings.Contains(output, msg) {
				t.Errorf("expected %q", msg)
			}
		}
	})
}

// TestRenderCompliance tests the Compliance Dashboard page body.
func TestRenderCompliance(t *testing.T) {
	t.Parallel()

	styles := NewStyles(LightTheme())
	sections := view.ProjectCompliance(testReport())

	t.Run("collapsed sections show only the header counts", func(t *testing.T) {
		t.Parallel()

		output := renderCompliance(styles, sections, 0, map[int]bool{})
		if !strings.Contains(output, "Heading Structure") {
			t.Error("expected the practice title")
		}
		if !strings.Contains(output, "(1 compliant, 1 non-compliant)") {
			t.Error("expected the section counts")
		}
		if strings.Contains(output, "Multiple H1 headings found.") {
			t.Error("expected details hidden while collapsed")
		}
	})

	t.Run("expanded section shows both document lists", func(t *testing.T) {
		t.Parallel()

		output := renderCompliance(styles, sections, 0, map[int]bool{0: true})
		if !strings.Contains(output, "guide.md") {
			t.Error("expected the compliant document")
		}
		if !strings.Contains(output, "Multiple H1 headings found.") {
			t.Error("expected the non-compliance reason")
		}
	})

	t.Run("no sections shows the empty state", func(t *testing.T) {
		t.Parallel()

		output := renderCompliance(styles, nil, 0, map[int]bool{})
		if !strings.Contains(output, view.MsgNoComplianceData) {
			t.Error("expected the compliance empty state")
		}
	})
}

// TestRenderRedundancy tests the Redundancy & Gaps page body.
func TestRenderRedundancy(t *testing.T) {
	t.Parallel()

	styles := NewStyles(LightTheme())

	t.Run("renders overlaps and empty gap lists", func(t *testing.T) {
		t.Parallel()

		output := renderRedundancy(styles, view.ProjectRedundancy(testReport()))
		if !strings.Contains(output, "Authentication") {
			t.Error("expected the overlap topic")
		}
		if !strings.Contains(output, "guide.md, api.md") {
			t.Error("expected the joined document set")
		}
		if !strings.Contains(output, view.MsgNoRedundant) {
			t.Error("expected the redundant-content empty state")
		}
		if !strings.Contains(output, view.MsgNoMissing) {
			t.Error("expected the missing-information empty state")
		}
	})
}

// TestRenderRecommendations tests the Recommendations page body.
func TestRenderRecommendations(t *testing.T) {
	t.Parallel()

	styles := NewStyles(LightTheme())

	t.Run("numbers recommendations from one", func(t *testing.T) {
		t.Parallel()

		output := renderRecommendations(styles, []string{"Add a glossary", "Merge doc A and B"})
		if !strings.Contains(output, view.MsgRecommendationsIntro) {
			t.Error("expected the intro line")
		}
		if !strings.Contains(output, "1. Add a glossary") {
			t.Error("expected the first recommendation numbered 1")
		}
		if !strings.Contains(output, "2. Merge doc A and B") {
			t.Error("expected the second recommendation numbered 2")
		}
	})

	t.Run("empty list shows the empty state", func(t *testing.T) {
		t.Parallel()

		output := renderRecommendations(styles, nil)
		if !strings.Contains(output, view.MsgNoRecommendations) {
			t.Error("expected the recommendations empty state")
		}
	})
}
