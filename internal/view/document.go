package view

import (
	"math"

	"github.com/nao1215/doclens/internal/model"
)

// DocumentDetail is the display model for one document in the explorer.
type DocumentDetail struct {
	// Name is the selected document's name.
	Name string

	// Heading and section counts, displayed as-is.
	H1Count      int
	H2Count      int
	SectionCount int

	// AverageSectionLength is the mean section length in whole tokens.
	// Zero when the document has no sections (degenerate-safe default).
	AverageSectionLength int

	// Features lists the boolean feature flags in display order.
	Features []Feature

	// Issues lists the practices this document fails, title-cased, with
	// reasons. Empty means the document displays as fully compliant.
	Issues []ComplianceIssue

	// Terms lists the tracked terms that reference this document, in
	// source term order.
	Terms []string
}

// Feature is one boolean feature flag with its display label.
type Feature struct {
	Label   string
	Present bool
}

// ComplianceIssue is one failed practice with its display reason.
type ComplianceIssue struct {
	// Practice is the title-cased practice name.
	Practice string

	// Reason explains the failure.
	Reason string
}

// ProjectDocument builds the explorer model for the named document.
// The second return value is false when the name is not an analyzed
// document, in which case callers show the selection prompt instead.
func ProjectDocument(r *model.Report, name string) (DocumentDetail, bool) {
	rec, ok := r.Documents.Lookup(name)
	if !ok {
		return DocumentDetail{}, false
	}

	detail := DocumentDetail{
		Name:                 name,
		H1Count:              rec.H1Count,
		H2Count:              rec.H2Count,
		SectionCount:         len(rec.SectionLengths),
		AverageSectionLength: int(math.Round(rec.AverageSectionLength())),
		Features: []Feature{
			{Label: "Lists Present", Present: rec.HasLists},
			{Label: "Tables Present", Present: rec.HasTables},
			{Label: "FAQs Present", Present: rec.HasFAQs},
			{Label: "Metadata Present", Present: rec.HasMetadata},
		},
		Terms: r.Terminology.TermsFor(name),
	}

	for _, issue := range r.Compliance.IssuesFor(name) {
		detail.Issues = append(detail.Issues, ComplianceIssue{
			Practice: PracticeTitle(issue.Practice),
			Reason:   issue.Reason,
		})
	}

	return detail, true
}
