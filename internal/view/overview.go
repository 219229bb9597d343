package view

import "github.com/nao1215/doclens/internal/model"

// Overview is the display model for the Overview page: the executive
// summary plus headline cardinalities.
type Overview struct {
	// Summary is the free-text executive summary.
	Summary string

	// Metrics holds the headline counts in display order.
	Metrics []Metric
}

// Metric is a single labeled count tile.
type Metric struct {
	Label string
	Value int
}

// ProjectOverview builds the Overview page model.
// All values are simple cardinalities and are zero for empty collections.
func ProjectOverview(r *model.Report) Overview {
	return Overview{
		Summary: r.Summary,
		Metrics: []Metric{
			{Label: "Documents Analyzed", Value: r.Documents.Len()},
			{Label: "Unique Terms Tracked", Value: len(r.Terminology.Terms)},
			{Label: "Terminology Inconsistencies", Value: len(r.Terminology.Inconsistencies)},
			{Label: "Compliance Areas Checked", Value: r.Compliance.Len()},
			{Label: "Recommendations Made", Value: len(r.Recommendations)},
		},
	}
}

// ProjectRecommendations returns the recommendation texts in source
// order. The 1-based numbering is applied by renderers so the same
// projection serves numbered lists and markdown ordered lists alike.
func ProjectRecommendations(r *model.Report) []string {
	return r.Recommendations
}
