package model

// Display strings pinned by the upstream analyzer's dashboard.
// These defaults are part of the data contract: downstream renderings
// must reproduce them byte for byte.
const (
	// DefaultSummary is shown when the report carries no summary text.
	DefaultSummary = "No summary provided."

	// ReasonNotSpecified is attached to a non-compliant entry that names
	// a file but gives no reason.
	ReasonNotSpecified = "No specific reason provided."

	// ReasonInferred marks a document that is absent from both the
	// compliant and non_compliant lists of a practice. Such documents are
	// displayed as compliant, but the distinction is kept available for
	// renderers that want to surface it.
	ReasonInferred = "Not explicitly listed as non-compliant"

	// ReasonUnknownShape is attached when a non_compliant entry had an
	// unexpected wire shape and only a file name could be recovered.
	ReasonUnknownShape = "N/A"
)

// Report is the complete analysis document consumed by the dashboard.
// All analysis is performed upstream; this structure only carries results.
//
// Every collection defaults to empty (never nil maps) when the source
// omits it, so callers branch on emptiness, not presence.
type Report struct {
	// Documents describes the structure of each analyzed document.
	Documents DocumentStructure `json:"document_structure"`

	// Terminology holds term usage, glossary, synonyms, and
	// terminology inconsistencies across the corpus.
	Terminology TerminologyAnalysis `json:"terminology_analysis"`

	// Compliance holds per-practice best-practice check results.
	Compliance ComplianceReport `json:"best_practices_compliance"`

	// Redundancy holds overlap, redundant-content, and gap findings.
	Redundancy RedundancyReport `json:"redundancy_and_gaps"`

	// Recommendations is an ordered list of free-text recommendations.
	// Order is significant; displays number them starting at 1.
	Recommendations []string `json:"recommendations"`

	// Summary is the free-text executive summary.
	// Defaults to DefaultSummary when the source omits it.
	Summary string `json:"summary"`
}

// NewReport returns an empty Report with all collections initialized.
func NewReport() *Report {
	return &Report{
		Documents: DocumentStructure{
			Records: map[string]DocumentRecord{},
		},
		Terminology: TerminologyAnalysis{
			Terms:      map[string]Term{},
			Glossary:   map[string]string{},
			SynonymMap: map[string][]string{},
		},
		Compliance: ComplianceReport{
			Checks: map[string]PracticeCheck{},
		},
		Summary: DefaultSummary,
	}
}

// DocumentStructure maps document names to their structural records.
// Names preserves the source key order so displays are deterministic.
type DocumentStructure struct {
	// Names lists document names in source order.
	Names []string `json:"names"`

	// Records holds the structural record for each name.
	Records map[string]DocumentRecord `json:"records"`
}

// Len returns the number of analyzed documents.
func (d DocumentStructure) Len() int { return len(d.Names) }

// Lookup returns the record for the named document.
// The second return value reports whether the document exists.
func (d DocumentStructure) Lookup(name string) (DocumentRecord, bool) {
	rec, ok := d.Records[name]
	return rec, ok
}

// DocumentRecord describes the structure of a single document.
type DocumentRecord struct {
	// H1Count and H2Count are heading counts by level.
	H1Count int `json:"h1_count"`
	H2Count int `json:"h2_count"`

	// SectionLengths holds per-section token lengths in document order.
	SectionLengths []int `json:"section_lengths"`

	// Feature flags.
	HasLists    bool `json:"has_lists"`
	HasTables   bool `json:"has_tables"`
	HasFAQs     bool `json:"has_faqs"`
	HasMetadata bool `json:"has_metadata"`
}

// AverageSectionLength returns the mean section length in tokens.
//
// When SectionLengths is empty the divisor is clamped to 1, yielding 0.
// This conflates "no sections" with a true zero average, but it is the
// upstream dashboard's exact degenerate behavior and is kept as-is.
func (r DocumentRecord) AverageSectionLength() float64 {
	sum := 0
	for _, n := range r.SectionLengths {
		sum += n
	}
	count := len(r.SectionLengths)
	if count == 0 {
		count = 1
	}
	return float64(sum) / float64(count)
}

// TerminologyAnalysis holds term usage and consistency findings.
// The *Order slices preserve source key order for their sibling maps.
type TerminologyAnalysis struct {
	// TermOrder lists tracked terms in source order.
	TermOrder []string `json:"term_order"`

	// Terms maps each tracked term to its usage details.
	Terms map[string]Term `json:"terms"`

	// GlossaryOrder lists glossary terms in source order.
	GlossaryOrder []string `json:"glossary_order"`

	// Glossary maps terms to their definitions.
	Glossary map[string]string `json:"glossary"`

	// SynonymOrder lists synonym-map terms in source order.
	SynonymOrder []string `json:"synonym_order"`

	// SynonymMap maps a canonical term to its known synonyms, ordered.
	SynonymMap map[string][]string `json:"synonym_map"`

	// Inconsistencies holds free-form inconsistency records.
	// The upstream schema is not fixed beyond string-to-scalar mappings,
	// so each record is normalized to string fields at load time.
	Inconsistencies []Record `json:"inconsistencies"`
}

// Term describes how one tracked term is used across the corpus.
type Term struct {
	// Frequency is the total number of occurrences.
	Frequency int `json:"frequency"`

	// Documents lists the documents that reference the term.
	// Entries may dangle (name no analyzed document); they are still
	// rendered as opaque strings.
	Documents []string `json:"documents"`
}

// TermsFor returns all tracked terms whose document list contains name,
// in source term order.
func (t TerminologyAnalysis) TermsFor(name string) []string {
	var found []string
	for _, term := range t.TermOrder {
		for _, doc := range t.Terms[term].Documents {
			if doc == name {
				found = append(found, term)
				break
			}
		}
	}
	return found
}

// Record is a free-form mapping of string keys to stringified scalars.
// Keys are sorted so tabular renderings are deterministic.
type Record struct {
	// Keys lists the field names in sorted order.
	Keys []string `json:"keys"`

	// Fields maps each key to its stringified value.
	Fields map[string]string `json:"fields"`
}

// ComplianceReport holds best-practice check results keyed by practice
// name (for example "heading_structure").
type ComplianceReport struct {
	// Practices lists practice keys in source order.
	Practices []string `json:"practices"`

	// Checks holds the per-practice result lists.
	Checks map[string]PracticeCheck `json:"checks"`
}

// Len returns the number of checked practices.
func (c ComplianceReport) Len() int { return len(c.Practices) }

// Issue is one practice a document fails, with the display reason.
type Issue struct {
	// Practice is the raw practice key; title-casing is a display concern.
	Practice string `json:"practice"`

	// Reason explains the failure.
	Reason string `json:"reason"`
}

// IssuesFor collects the practices the named document is non-compliant
// with, in source practice order.
//
// A document counts as non-compliant for a practice exactly when it
// appears in that practice's non_compliant list; the entry's reason is
// authoritative even if the document is also listed as compliant. A
// document absent from both lists is displayed as compliant.
func (c ComplianceReport) IssuesFor(name string) []Issue {
	var issues []Issue
	for _, practice := range c.Practices {
		for _, entry := range c.Checks[practice].NonCompliant {
			if entry.File == name {
				issues = append(issues, Issue{Practice: practice, Reason: entry.Reason})
				break
			}
		}
	}
	return issues
}

// PracticeCheck holds the compliant and non-compliant document lists for
// a single practice.
type PracticeCheck struct {
	// Compliant lists documents that passed the check.
	Compliant []string `json:"compliant"`

	// NonCompliant lists documents that failed, with reasons.
	NonCompliant []NonCompliantEntry `json:"non_compliant"`
}

// NonCompliantEntry names a failing document and the reason.
// This is the normalized form of the upstream object-or-string variant.
type NonCompliantEntry struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// RedundancyReport holds overlap and gap findings.
type RedundancyReport struct {
	// Overlaps lists topics covered by more than one document.
	Overlaps []Overlap `json:"overlaps"`

	// RedundantContent holds free-text descriptions of duplicated content.
	RedundantContent []string `json:"redundant_content"`

	// MissingInformation holds free-text descriptions of coverage gaps.
	MissingInformation []string `json:"missing_information"`
}

// Overlap names a topic and the documents that all cover it.
type Overlap struct {
	Topic     string   `json:"topic"`
	Documents []string `json:"documents"`
}
