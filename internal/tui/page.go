package tui

// Page identifies one of the six dashboard views.
// The zero value is the Overview, which is also the start page.
type Page int

// The six navigable pages, in sidebar order.
const (
	PageOverview Page = iota
	PageDocuments
	PageTerminology
	PageCompliance
	PageRedundancy
	PageRecommendations

	pageCount
)

// Title returns the sidebar label for the page.
func (p Page) Title() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PageDocuments:
		return "Document Explorer"
	case PageTerminology:
		return "Terminology Hub"
	case PageCompliance:
		return "Compliance Dashboard"
	case PageRedundancy:
		return "Redundancy & Gaps"
	case PageRecommendations:
		return "Recommendations"
	default:
		return "Unknown"
	}
}

// Pages returns all pages in sidebar order.
func Pages() []Page {
	pages := make([]Page, 0, pageCount)
	for p := PageOverview; p < pageCount; p++ {
		pages = append(pages, p)
	}
	return pages
}

// next returns the following page, stopping at the last.
func (p Page) next() Page {
	if p+1 >= pageCount {
		return p
	}
	return p + 1
}

// prev returns the preceding page, stopping at the first.
func (p Page) prev() Page {
	if p <= PageOverview {
		return p
	}
	return p - 1
}
