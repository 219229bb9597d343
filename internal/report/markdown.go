package report

import (
	"io"
	"strconv"

	"github.com/nao1215/doclens/internal/model"
	"github.com/nao1215/doclens/internal/view"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// maxChartTerms caps the term-frequency pie chart so dense glossaries
// do not produce unreadable charts.
const maxChartTerms = 10

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// This format is designed for documentation and sharing: section
// headings mirror the dashboard pages, tables carry the same rows as
// the interactive views, and a mermaid pie chart summarizes the most
// frequent terms.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeOverview(md, report)
	w.writeDocuments(md, report)
	w.writeTerminology(md, report)
	w.writeCompliance(md, report)
	w.writeRedundancy(md, report)
	w.writeRecommendations(md, report)

	return len(md.String()), md.Build()
}

// writeOverview writes the summary, headline metrics, and term chart.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, report *model.Report) {
	overview := view.ProjectOverview(report)

	md.H1("Documentation Analysis Report")
	md.PlainText("")
	md.PlainText(overview.Summary)
	md.PlainText("")

	md.H2("Key Statistics")
	md.PlainText("")

	rows := make([][]string, 0, len(overview.Metrics))
	for _, metric := range overview.Metrics {
		rows = append(rows, []string{metric.Label, strconv.Itoa(metric.Value)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeTermChart(md, report)
}

// writeTermChart writes a mermaid pie chart of the most frequent terms.
func (w *MarkdownWriter) writeTermChart(md *markdown.Markdown, report *model.Report) {
	frequencies := view.ProjectTerminology(report).Frequencies
	if len(frequencies) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Most Frequent Terms"),
		piechart.WithShowData(true),
	)
	for i, entry := range frequencies {
		if i == maxChartTerms {
			break
		}
		if entry.Frequency > 0 {
			chart.LabelAndIntValue(entry.Term, uint64(entry.Frequency))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeDocuments writes one explorer section per analyzed document.
func (w *MarkdownWriter) writeDocuments(md *markdown.Markdown, report *model.Report) {
	md.H2("Document Explorer")
	md.PlainText("")

	if report.Documents.Len() == 0 {
		md.PlainText(view.MsgSelectDocument)
		md.PlainText("")
		return
	}

	for _, name := range report.Documents.Names {
		detail, ok := view.ProjectDocument(report, name)
		if !ok {
			continue
		}

		md.H3("`" + detail.Name + "`")
		md.PlainText("")

		featureRows := make([][]string, 0, len(detail.Features))
		for _, feature := range detail.Features {
			featureRows = append(featureRows, []string{feature.Label, strconv.FormatBool(feature.Present)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Property", "Value"},
			Rows: append([][]string{
				{"H1 Headings", strconv.Itoa(detail.H1Count)},
				{"H2 Headings", strconv.Itoa(detail.H2Count)},
				{"Sections", strconv.Itoa(detail.SectionCount)},
				{"Avg Section Length (Tokens)", strconv.Itoa(detail.AverageSectionLength)},
			}, featureRows...),
		})
		md.PlainText("")

		if len(detail.Issues) == 0 {
			md.Tip(view.MsgDocCompliant)
		} else {
			md.Warningf("%s", view.MsgDocHasIssues)

			issueRows := make([][]string, 0, len(detail.Issues))
			for _, issue := range detail.Issues {
				issueRows = append(issueRows, []string{issue.Practice, issue.Reason})
			}
			md.PlainText("")
			md.Table(markdown.TableSet{
				Header: []string{"Practice", "Reason"},
				Rows:   issueRows,
			})
		}
		md.PlainText("")

		if len(detail.Terms) == 0 {
			md.PlainText(view.MsgNoRelevantTerms)
		} else {
			md.PlainText("**Relevant Terms:**")
			md.PlainText("")
			md.BulletList(detail.Terms...)
		}
		md.PlainText("")
	}
}

// writeTerminology writes the four terminology hub sections.
func (w *MarkdownWriter) writeTerminology(md *markdown.Markdown, report *model.Report) {
	terminology := view.ProjectTerminology(report)

	md.H2("Terminology Hub")
	md.PlainText("")

	md.H3("Glossary")
	md.PlainText("")
	if len(terminology.Glossary) == 0 {
		md.PlainText(view.MsgNoGlossary)
	} else {
		rows := make([][]string, 0, len(terminology.Glossary))
		for _, entry := range terminology.Glossary {
			rows = append(rows, []string{entry.Term, entry.Definition})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Term", "Definition"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	md.H3("Synonym Map")
	md.PlainText("")
	if len(terminology.Synonyms) == 0 {
		md.PlainText(view.MsgNoSynonyms)
	} else {
		rows := make([][]string, 0, len(terminology.Synonyms))
		for _, entry := range terminology.Synonyms {
			rows = append(rows, []string{entry.Term, entry.Synonyms})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Term", "Synonyms"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	md.H3("Term Frequency")
	md.PlainText("")
	if len(terminology.Frequencies) == 0 {
		md.PlainText(view.MsgNoFrequencies)
	} else {
		rows := make([][]string, 0, len(terminology.Frequencies))
		for _, entry := range terminology.Frequencies {
			rows = append(rows, []string{entry.Term, strconv.Itoa(entry.Frequency)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Term", "Frequency"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	md.H3("Inconsistencies")
	md.PlainText("")
	if len(terminology.Inconsistencies.Rows) == 0 {
		md.PlainText(view.MsgNoInconsistencies)
	} else {
		md.Warningf("%s", view.MsgInconsistenciesFound)
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: terminology.Inconsistencies.Columns,
			Rows:   terminology.Inconsistencies.Rows,
		})
	}
	md.PlainText("")
}

// writeCompliance writes one section per checked practice.
func (w *MarkdownWriter) writeCompliance(md *markdown.Markdown, report *model.Report) {
	sections := view.ProjectCompliance(report)

	md.H2("Best Practices Compliance Dashboard")
	md.PlainText("")

	if len(sections) == 0 {
		md.PlainText(view.MsgNoComplianceData)
		md.PlainText("")
		return
	}

	for _, section := range sections {
		md.H3(section.Title)
		md.PlainText("")

		md.PlainText("**Compliant Documents:**")
		md.PlainText("")
		if len(section.Compliant) == 0 {
			md.PlainText(view.MsgNoCompliantDocs)
		} else {
			md.PlainTextf("`%d` document(s):", len(section.Compliant))
			md.PlainText("")
			md.BulletList(section.Compliant...)
		}
		md.PlainText("")

		md.PlainText("**Non-Compliant Documents:**")
		md.PlainText("")
		if len(section.NonCompliant) == 0 {
			md.PlainText(view.MsgNoNonCompliantDocs)
		} else {
			rows := make([][]string, 0, len(section.NonCompliant))
			for _, entry := range section.NonCompliant {
				rows = append(rows, []string{entry.File, entry.Reason})
			}
			md.Table(markdown.TableSet{
				Header: []string{"Document", "Reason"},
				Rows:   rows,
			})
		}
		md.PlainText("")
	}
}

// writeRedundancy writes the overlap table and the two gap lists.
func (w *MarkdownWriter) writeRedundancy(md *markdown.Markdown, report *model.Report) {
	redundancy := view.ProjectRedundancy(report)

	md.H2("Redundancy Analysis and Information Gaps")
	md.PlainText("")

	md.H3("Overlapping Topics")
	md.PlainText("")
	if len(redundancy.Overlaps) == 0 {
		md.PlainText(view.MsgNoOverlaps)
	} else {
		rows := make([][]string, 0, len(redundancy.Overlaps))
		for _, overlap := range redundancy.Overlaps {
			rows = append(rows, []string{overlap.Topic, overlap.Documents})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Topic", "Documents"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	md.H3("Examples of Redundant Content")
	md.PlainText("")
	if len(redundancy.RedundantContent) == 0 {
		md.PlainText(view.MsgNoRedundant)
	} else {
		md.Warningf("%s", view.MsgRedundantIntro)
		md.PlainText("")
		md.BulletList(redundancy.RedundantContent...)
	}
	md.PlainText("")

	md.H3("Identified Information Gaps")
	md.PlainText("")
	if len(redundancy.MissingInformation) == 0 {
		md.PlainText(view.MsgNoMissing)
	} else {
		md.Warningf("%s", view.MsgMissingIntro)
		md.PlainText("")
		md.BulletList(redundancy.MissingInformation...)
	}
	md.PlainText("")
}

// writeRecommendations writes the numbered recommendation list.
// Numbers are written as plain text so the 1-based source order is
// preserved exactly even if a renderer would restart markdown lists.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.Report) {
	recommendations := view.ProjectRecommendations(report)

	md.H2("Recommendations for Improvement")
	md.PlainText("")

	if len(recommendations) == 0 {
		md.PlainText(view.MsgNoRecommendations)
		md.PlainText("")
		return
	}

	md.PlainText(view.MsgRecommendationsIntro)
	md.PlainText("")
	for i, recommendation := range recommendations {
		md.PlainTextf("%d. %s", i+1, recommendation)
	}
	md.PlainText("")
}
