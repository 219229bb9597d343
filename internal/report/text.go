package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/doclens/internal/model"
	"github.com/nao1215/doclens/internal/view"
)

// TextWriter outputs human-readable text reports.
// The layout mirrors the dashboard's six pages top to bottom, with the
// document explorer expanded for every analyzed document.
//
// Design decision: plain text with ASCII formatting rather than ANSI
// colors, so output pipes cleanly to files and other tools. The
// interactive dashboard is the colored surface.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full report in human-readable format.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeOverview(&sb, report)
	w.writeDocuments(&sb, report)
	w.writeTerminology(&sb, report)
	w.writeCompliance(&sb, report)
	w.writeRedundancy(&sb, report)
	w.writeRecommendations(&sb, report)

	return io.WriteString(w.output, sb.String())
}

// header writes a top-level section header with a full-width rule.
func (w *TextWriter) header(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
}

// subheader writes a second-level section header.
func (w *TextWriter) subheader(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", len(title)) + "\n")
}

// table writes a column-aligned table with a header row.
func (w *TextWriter) table(sb *strings.Builder, columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = len(column)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(sb, "%-*s", widths[i], cell)
		}
		sb.WriteString("\n")
	}

	writeRow(columns)
	total := 0
	for _, width := range widths {
		total += width
	}
	sb.WriteString(strings.Repeat("-", total+2*(len(columns)-1)) + "\n")
	for _, row := range rows {
		writeRow(row)
	}
}

// writeOverview writes the summary and headline metrics.
func (w *TextWriter) writeOverview(sb *strings.Builder, report *model.Report) {
	overview := view.ProjectOverview(report)

	w.header(sb, "Documentation Analysis Overview")
	sb.WriteString(overview.Summary + "\n\n")

	w.subheader(sb, "Key Statistics")
	for _, metric := range overview.Metrics {
		fmt.Fprintf(sb, "  %-28s %d\n", metric.Label, metric.Value)
	}
	sb.WriteString("\n")
}

// writeDocuments writes one explorer section per analyzed document.
func (w *TextWriter) writeDocuments(sb *strings.Builder, report *model.Report) {
	w.header(sb, "Document Explorer")

	if report.Documents.Len() == 0 {
		sb.WriteString(view.MsgSelectDocument + "\n\n")
		return
	}

	for _, name := range report.Documents.Names {
		detail, ok := view.ProjectDocument(report, name)
		if !ok {
			continue
		}

		w.subheader(sb, detail.Name)
		fmt.Fprintf(sb, "  H1 Headings: %d  H2 Headings: %d  Sections: %d  Avg Section Length (Tokens): %d\n",
			detail.H1Count, detail.H2Count, detail.SectionCount, detail.AverageSectionLength)

		var features []string
		for _, feature := range detail.Features {
			features = append(features, fmt.Sprintf("%s: %t", feature.Label, feature.Present))
		}
		sb.WriteString("  Features: " + strings.Join(features, ", ") + "\n")

		if len(detail.Issues) == 0 {
			sb.WriteString("  " + view.MsgDocCompliant + "\n")
		} else {
			sb.WriteString("  " + view.MsgDocHasIssues + "\n")
			for _, issue := range detail.Issues {
				fmt.Fprintf(sb, "    - %s: %s\n", issue.Practice, issue.Reason)
			}
		}

		if len(detail.Terms) == 0 {
			sb.WriteString("  " + view.MsgNoRelevantTerms + "\n")
		} else {
			sb.WriteString("  Relevant Terms: " + strings.Join(detail.Terms, ", ") + "\n")
		}
		sb.WriteString("\n")
	}
}

// writeTerminology writes the four terminology hub sections.
func (w *TextWriter) writeTerminology(sb *strings.Builder, report *model.Report) {
	terminology := view.ProjectTerminology(report)

	w.header(sb, "Terminology Hub")

	w.subheader(sb, "Glossary")
	if len(terminology.Glossary) == 0 {
		sb.WriteString(view.MsgNoGlossary + "\n")
	} else {
		rows := make([][]string, 0, len(terminology.Glossary))
		for _, entry := range terminology.Glossary {
			rows = append(rows, []string{entry.Term, entry.Definition})
		}
		w.table(sb, []string{"Term", "Definition"}, rows)
	}
	sb.WriteString("\n")

	w.subheader(sb, "Synonym Map")
	if len(terminology.Synonyms) == 0 {
		sb.WriteString(view.MsgNoSynonyms + "\n")
	} else {
		rows := make([][]string, 0, len(terminology.Synonyms))
		for _, entry := range terminology.Synonyms {
			rows = append(rows, []string{entry.Term, entry.Synonyms})
		}
		w.table(sb, []string{"Term", "Synonyms"}, rows)
	}
	sb.WriteString("\n")

	w.subheader(sb, "Term Frequency")
	if len(terminology.Frequencies) == 0 {
		sb.WriteString(view.MsgNoFrequencies + "\n")
	} else {
		rows := make([][]string, 0, len(terminology.Frequencies))
		for _, entry := range terminology.Frequencies {
			rows = append(rows, []string{entry.Term, fmt.Sprintf("%d", entry.Frequency)})
		}
		w.table(sb, []string{"Term", "Frequency"}, rows)
	}
	sb.WriteString("\n")

	w.subheader(sb, "Inconsistencies")
	if len(terminology.Inconsistencies.Rows) == 0 {
		sb.WriteString(view.MsgNoInconsistencies + "\n")
	} else {
		sb.WriteString(view.MsgInconsistenciesFound + "\n")
		w.table(sb, terminology.Inconsistencies.Columns, terminology.Inconsistencies.Rows)
	}
	sb.WriteString("\n")
}

// writeCompliance writes one section per checked practice.
func (w *TextWriter) writeCompliance(sb *strings.Builder, report *model.Report) {
	sections := view.ProjectCompliance(report)

	w.header(sb, "Best Practices Compliance Dashboard")

	if len(sections) == 0 {
		sb.WriteString(view.MsgNoComplianceData + "\n\n")
		return
	}

	for _, section := range sections {
		w.subheader(sb, section.Title)

		if len(section.Compliant) == 0 {
			sb.WriteString("  " + view.MsgNoCompliantDocs + "\n")
		} else {
			fmt.Fprintf(sb, "  Compliant (%d):\n", len(section.Compliant))
			for _, name := range section.Compliant {
				sb.WriteString("    - " + name + "\n")
			}
		}

		if len(section.NonCompliant) == 0 {
			sb.WriteString("  " + view.MsgNoNonCompliantDocs + "\n")
		} else {
			fmt.Fprintf(sb, "  Non-Compliant (%d):\n", len(section.NonCompliant))
			for _, entry := range section.NonCompliant {
				fmt.Fprintf(sb, "    - %s: %s\n", entry.File, entry.Reason)
			}
		}
		sb.WriteString("\n")
	}
}

// writeRedundancy writes the overlap table and the two gap lists.
func (w *TextWriter) writeRedundancy(sb *strings.Builder, report *model.Report) {
	redundancy := view.ProjectRedundancy(report)

	w.header(sb, "Redundancy Analysis and Information Gaps")

	w.subheader(sb, "Overlapping Topics")
	if len(redundancy.Overlaps) == 0 {
		sb.WriteString(view.MsgNoOverlaps + "\n")
	} else {
		rows := make([][]string, 0, len(redundancy.Overlaps))
		for _, overlap := range redundancy.Overlaps {
			rows = append(rows, []string{overlap.Topic, overlap.Documents})
		}
		w.table(sb, []string{"Topic", "Documents"}, rows)
	}
	sb.WriteString("\n")

	w.subheader(sb, "Examples of Redundant Content")
	if len(redundancy.RedundantContent) == 0 {
		sb.WriteString(view.MsgNoRedundant + "\n")
	} else {
		sb.WriteString(view.MsgRedundantIntro + "\n")
		for _, item := range redundancy.RedundantContent {
			sb.WriteString("  - " + item + "\n")
		}
	}
	sb.WriteString("\n")

	w.subheader(sb, "Identified Information Gaps")
	if len(redundancy.MissingInformation) == 0 {
		sb.WriteString(view.MsgNoMissing + "\n")
	} else {
		sb.WriteString(view.MsgMissingIntro + "\n")
		for _, item := range redundancy.MissingInformation {
			sb.WriteString("  - " + item + "\n")
		}
	}
	sb.WriteString("\n")
}

// writeRecommendations writes the numbered recommendation list.
func (w *TextWriter) writeRecommendations(sb *strings.Builder, report *model.Report) {
	recommendations := view.ProjectRecommendations(report)

	w.header(sb, "Recommendations for Improvement")

	if len(recommendations) == 0 {
		sb.WriteString(view.MsgNoRecommendations + "\n\n")
		return
	}

	sb.WriteString(view.MsgRecommendationsIntro + "\n")
	for i, recommendation := range recommendations {
		fmt.Fprintf(sb, "%d. %s\n", i+1, recommendation)
	}
	sb.WriteString("\n")
}
