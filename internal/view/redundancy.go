package view

import (
	"strings"

	"github.com/nao1215/doclens/internal/model"
)

// Redundancy is the display model for the Redundancy & Gaps page.
type Redundancy struct {
	// Overlaps holds (topic, joined documents) rows.
	Overlaps []OverlapRow

	// RedundantContent holds bulleted free-text descriptions.
	RedundantContent []string

	// MissingInformation holds bulleted free-text descriptions.
	MissingInformation []string
}

// OverlapRow is one overlapping-topic row with its document set joined
// by ", " for display.
type OverlapRow struct {
	Topic     string
	Documents string
}

// ProjectRedundancy builds the Redundancy & Gaps page model.
func ProjectRedundancy(r *model.Report) Redundancy {
	out := Redundancy{
		RedundantContent:   r.Redundancy.RedundantContent,
		MissingInformation: r.Redundancy.MissingInformation,
	}
	for _, overlap := range r.Redundancy.Overlaps {
		out.Overlaps = append(out.Overlaps, OverlapRow{
			Topic:     overlap.Topic,
			Documents: strings.Join(overlap.Documents, ", "),
		})
	}
	return out
}
