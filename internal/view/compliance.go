package view

import (
	"strings"

	"github.com/nao1215/doclens/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PracticeSection is one collapsible section of the Compliance Dashboard.
type PracticeSection struct {
	// Title is the title-cased practice name.
	Title string

	// Compliant lists documents that passed the check.
	Compliant []string

	// NonCompliant lists failing documents with reasons.
	NonCompliant []model.NonCompliantEntry
}

// ProjectCompliance builds one section per checked practice, in source
// order. An empty result means the page shows MsgNoComplianceData.
func ProjectCompliance(r *model.Report) []PracticeSection {
	var sections []PracticeSection
	for _, practice := range r.Compliance.Practices {
		check := r.Compliance.Checks[practice]
		sections = append(sections, PracticeSection{
			Title:        PracticeTitle(practice),
			Compliant:    check.Compliant,
			NonCompliant: check.NonCompliant,
		})
	}
	return sections
}

// PracticeTitle converts a practice key such as "heading_structure" into
// its display title "Heading Structure": underscores become spaces and
// each word is title-cased.
//
// cases.Title is used instead of the deprecated strings.Title; a Caser
// is not safe for concurrent use, so one is created per call.
func PracticeTitle(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
