package tui

import (
	"fmt"
	"strings"

	"github.com/nao1215/doclens/internal/model"
	"github.com/nao1215/doclens/internal/view"
)

// renderOverview renders the Overview page body.
func renderOverview(styles Styles, overview view.Overview) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Summary"))
	sb.WriteString("\n")
	sb.WriteString(styles.Body.Render(overview.Summary))
	sb.WriteString("\n\n")

	sb.WriteString(styles.Title.Render("Key Statistics"))
	sb.WriteString("\n")
	for _, metric := range overview.Metrics {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			styles.Metric.Width(6).Render(fmt.Sprintf("%d", metric.Value)),
			styles.Body.Render(metric.Label),
		))
	}

	return sb.String()
}

// renderDocuments renders the Document Explorer page body: the picker
// over all analyzed documents plus, when one is selected, its detail.
// cursor is the selected index into report.Documents.Names, or -1 when
// nothing is selected yet.
func renderDocuments(styles Styles, report *model.Report, cursor int) string {
	var sb strings.Builder

	names := report.Documents.Names
	if len(names) == 0 {
		sb.WriteString(styles.Muted.Render(view.MsgSelectDocument))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(styles.Title.Render("Select a Document"))
	sb.WriteString("\n")
	for i, name := range names {
		if i == cursor {
			sb.WriteString(styles.NavActive.Render("▸ " + name))
		} else {
			sb.WriteString(styles.NavInactive.Render("  " + name))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if cursor < 0 || cursor >= len(names) {
		sb.WriteString(styles.Muted.Render(view.MsgSelectDocument))
		sb.WriteString("\n")
		return sb.String()
	}

	detail, ok := view.ProjectDocument(report, names[cursor])
	if !ok {
		return sb.String()
	}

	sb.WriteString(styles.Title.Render("Details for: " + detail.Name))
	sb.WriteString("\n\n")

	structure := NewSimpleTable("Structure", "Property", "Value")
	structure.AddRow("H1 Headings", fmt.Sprintf("%d", detail.H1Count))
	structure.AddRow("H2 Headings", fmt.Sprintf("%d", detail.H2Count))
	structure.AddRow("Sections", fmt.Sprintf("%d", detail.SectionCount))
	structure.AddRow("Avg Section Length (Tokens)", fmt.Sprintf("%d", detail.AverageSectionLength))
	for _, feature := range detail.Features {
		structure.AddRow(feature.Label, fmt.Sprintf("%t", feature.Present))
	}
	sb.WriteString(structure.View(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Title.Render("Compliance Status"))
	sb.WriteString("\n")
	if len(detail.Issues) == 0 {
		sb.WriteString(styles.Success.Render(view.MsgDocCompliant))
		sb.WriteString("\n")
	} else {
		sb.WriteString(styles.Warning.Render(view.MsgDocHasIssues))
		sb.WriteString("\n")

		issues := NewSimpleTable("", "Practice", "Reason")
		for _, issue := range detail.Issues {
			issues.AddRow(issue.Practice, issue.Reason)
		}
		sb.WriteString(issues.View(styles))
	}
	sb.WriteString("\n")

	sb.WriteString(styles.Title.Render("Relevant Terms"))
	sb.WriteString("\n")
	if len(detail.Terms) == 0 {
		sb.WriteString(styles.Muted.Render(view.MsgNoRelevantTerms))
	} else {
		sb.WriteString(styles.Body.Render(strings.Join(detail.Terms, ", ")))
	}
	sb.WriteString("\n")

	return sb.String()
}

// renderTerminology renders the Terminology Hub page body.
func renderTerminology(styles Styles, terminology view.Terminology) string {
	var sb strings.Builder

	glossary := NewSimpleTable("Glossary", "Term", "Definition")
	glossary.Empty = view.MsgNoGlossary
	for _, entry := range terminology.Glossary {
		glossary.AddRow(entry.Term, entry.Definition)
	}
	sb.WriteString(glossary.View(styles))
	sb.WriteString("\n")

	synonyms := NewSimpleTable("Synonym Map", "Term", "Synonyms")
	synonyms.Empty = view.MsgNoSynonyms
	for _, entry := range terminology.Synonyms {
		synonyms.AddRow(entry.Term, entry.Synonyms)
	}
	sb.WriteString(synonyms.View(styles))
	sb.WriteString("\n")

	frequencies := NewSimpleTable("Term Frequency", "Term", "Frequency")
	frequencies.Empty = view.MsgNoFrequencies
	for _, entry := range terminology.Frequencies {
		frequencies.AddRow(entry.Term, fmt.Sprintf("%d", entry.Frequency))
	}
	sb.WriteString(frequencies.View(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Title.Render("Inconsistencies"))
	sb.WriteString("\n")
	if len(terminology.Inconsistencies.Rows) == 0 {
		sb.WriteString(styles.Success.Render(view.MsgNoInconsistencies))
		sb.WriteString("\n")
	} else {
		sb.WriteString(styles.Warning.Render(view.MsgInconsistenciesFound))
		sb.WriteString("\n")

		inconsistencies := NewSimpleTable("", terminology.Inconsistencies.Columns...)
		for _, row := range terminology.Inconsistencies.Rows {
			inconsistencies.AddRow(row...)
		}
		sb.WriteString(inconsistencies.View(styles))
	}

	return sb.String()
}

// renderCompliance renders the Compliance Dashboard page body: one
// collapsible section per practice. cursor marks the focused section;
// expanded tracks which sections are open.
func renderCompliance(styles Styles, sections []view.PracticeSection, cursor int, expanded map[int]bool) string {
	var sb strings.Builder

	if len(sections) == 0 {
		sb.WriteString(styles.Warning.Render(view.MsgNoComplianceData))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, section := range sections {
		marker := "  "
		if i == cursor {
			marker = styles.NavActive.Render("▸ ")
		}
		chevron := "▸"
		if expanded[i] {
			chevron = "▾"
		}

		sb.WriteString(marker)
		sb.WriteString(styles.Title.Render(fmt.Sprintf("%s %s", chevron, section.Title)))
		sb.WriteString(styles.Muted.Render(fmt.Sprintf("  (%d compliant, %d non-compliant)",
			len(section.Compliant), len(section.NonCompliant))))
		sb.WriteString("\n")

		if !expanded[i] {
			continue
		}

		sb.WriteString(styles.Bold.Render("  Compliant Documents:"))
		sb.WriteString("\n")
		if len(section.Compliant) == 0 {
			sb.WriteString("  " + styles.Info.Render(view.MsgNoCompliantDocs))
			sb.WriteString("\n")
		} else {
			sb.WriteString(styles.Muted.Render(fmt.Sprintf("  %d document(s):", len(section.Compliant))))
			sb.WriteString("\n")
			for _, name := range section.Compliant {
				sb.WriteString(styles.Body.Render("    • " + name))
				sb.WriteString("\n")
			}
		}

		sb.WriteString(styles.Bold.Render("  Non-Compliant Documents:"))
		sb.WriteString("\n")
		if len(section.NonCompliant) == 0 {
			sb.WriteString("  " + styles.Info.Render(view.MsgNoNonCompliantDocs))
			sb.WriteString("\n")
		} else {
			nonCompliant := NewSimpleTable("", "Document", "Reason")
			for _, entry := range section.NonCompliant {
				nonCompliant.AddRow(entry.File, entry.Reason)
			}
			sb.WriteString(nonCompliant.View(styles))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderRedundancy renders the Redundancy & Gaps page body.
func renderRedundancy(styles Styles, redundancy view.Redundancy) string {
	var sb strings.Builder

	overlaps := NewSimpleTable("Overlapping Topics", "Topic", "Documents")
	overlaps.Empty = view.MsgNoOverlaps
	for _, overlap := range redundancy.Overlaps {
		overlaps.AddRow(overlap.Topic, overlap.Documents)
	}
	sb.WriteString(overlaps.View(styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Title.Render("Examples of Redundant Content"))
	sb.WriteString("\n")
	if len(redundancy.RedundantContent) == 0 {
		sb.WriteString(styles.Info.Render(view.MsgNoRedundant))
		sb.WriteString("\n")
	} else {
		sb.WriteString(styles.Warning.Render(view.MsgRedundantIntro))
		sb.WriteString("\n")
		for _, item := range redundancy.RedundantContent {
			sb.WriteString(styles.Body.Render("  • " + item))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString(styles.Title.Render("Identified Information Gaps"))
	sb.WriteString("\n")
	if len(redundancy.MissingInformation) == 0 {
		sb.WriteString(styles.Info.Render(view.MsgNoMissing))
		sb.WriteString("\n")
	} else {
		sb.WriteString(styles.Warning.Render(view.MsgMissingIntro))
		sb.WriteString("\n")
		for _, item := range redundancy.MissingInformation {
			sb.WriteString(styles.Body.Render("  • " + item))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// renderRecommendations renders the Recommendations page body as a
// 1-based numbered list in source order.
func renderRecommendations(styles Styles, recommendations []string) string {
	var sb strings.Builder

	if len(recommendations) == 0 {
		sb.WriteString(styles.Info.Render(view.MsgNoRecommendations))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(styles.Body.Render(view.MsgRecommendationsIntro))
	sb.WriteString("\n\n")
	for i, recommendation := range recommendations {
		sb.WriteString(styles.Body.Render(fmt.Sprintf("%d. %s", i+1, recommendation)))
		sb.WriteString("\n")
	}

	return sb.String()
}
