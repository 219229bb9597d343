package tui

import "testing"

// TestPageTitle tests sidebar labels.
func TestPageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page Page
		want string
	}{
		{page: PageOverview, want: "Overview"},
		{page: PageDocuments, want: "Document Explorer"},
		{page: PageTerminology, want: "Terminology Hub"},
		{page: PageCompliance, want: "Compliance Dashboard"},
		{page: PageRedundancy, want: "Redundancy & Gaps"},
		{page: PageRecommendations, want: "Recommendations"},
		{page: Page(99), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.page.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestPages tests the navigable page list.
func TestPages(t *testing.T) {
	t.Parallel()

	pages := Pages()
	if len(pages) != 6 {
		t.Fatalf("len(Pages()) = %d, want 6", len(pages))
	}
	if pages[0] != PageOverview {
		t.Errorf("first page = %v, want PageOverview", pages[0])
	}
	if pages[len(pages)-1] != PageRecommendations {
		t.Errorf("last page = %v, want PageRecommendations", pages[len(pages)-1])
	}
}

// TestPageNavigation tests the clamped next/prev stepping.
func TestPageNavigation(t *testing.T) {
	t.Parallel()

	t.Run("next advances and clamps at the last page", func(t *testing.T) {
		t.Parallel()

		if got := PageOverview.next(); got != PageDocuments {
			t.Errorf("next() = %v, want PageDocuments", got)
		}
		if got := PageRecommendations.next(); got != PageRecommendations {
			t.Errorf("next() at end = %v, want PageRecommendations", got)
		}
	})

	t.Run("prev retreats and clamps at the first page", func(t *testing.T) {
		t.Parallel()

		if got := PageDocuments.prev(); got != PageOverview {
			t.Errorf("prev() = %v, want PageOverview", got)
		}
		if got := PageOverview.prev(); got != PageOverview {
			t.Errorf("prev() at start = %v, want PageOverview", got)
		}
	})
}
