package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/doclens/internal/model"
	"github.com/nao1215/doclens/internal/view"
)

// Layout constants for consistent spacing.
const (
	sidebarWidth = 28
	headerHeight = 2
	footerHeight = 2
)

// focusArea identifies which pane receives key input.
type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// Model is the bubbletea model for the dashboard.
//
// The report is read-only for the whole session; the only mutable state
// is the navigation state below. Per the navigation contract, no state
// carries over between pages: the explorer's document cursor and the
// compliance section state reset whenever their page is left.
type Model struct {
	report *model.Report
	styles Styles

	page  Page
	focus focusArea

	// docCursor indexes report.Documents.Names on the explorer page;
	// -1 means no document selected.
	docCursor int

	// practiceCursor and expanded drive the collapsible compliance
	// sections.
	practiceCursor int
	expanded       map[int]bool

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates the dashboard model over a loaded report.
func New(report *model.Report, styles Styles) Model {
	return Model{
		report:    report,
		styles:    styles,
		page:      PageOverview,
		docCursor: -1,
		expanded:  map[int]bool{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentWidth := max(m.width-sidebarWidth-4, 20)
		contentHeight := max(m.height-headerHeight-footerHeight-2, 5)
		if !m.ready {
			m.viewport = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = contentHeight
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key input by focus and page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.focus == focusSidebar {
			m.focus = focusContent
		} else {
			m.focus = focusSidebar
		}
		return m, nil
	case "1", "2", "3", "4", "5", "6":
		m.setPage(Page(int(msg.String()[0] - '1')))
		return m, nil
	}

	if m.focus == focusSidebar {
		switch msg.String() {
		case "up", "k":
			m.setPage(m.page.prev())
		case "down", "j":
			m.setPage(m.page.next())
		case "enter", "right", "l":
			m.focus = focusContent
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "left", "h":
		m.focus = focusSidebar
		return m, nil
	}

	switch m.page {
	case PageDocuments:
		switch msg.String() {
		case "up", "k":
			if m.docCursor > -1 {
				m.docCursor--
				m.refreshContent()
			}
			return m, nil
		case "down", "j":
			if m.docCursor < m.report.Documents.Len()-1 {
				m.docCursor++
				m.refreshContent()
			}
			return m, nil
		}
	case PageCompliance:
		switch msg.String() {
		case "up", "k":
			if m.practiceCursor > 0 {
				m.practiceCursor--
				m.refreshContent()
			}
			return m, nil
		case "down", "j":
			if m.practiceCursor < m.report.Compliance.Len()-1 {
				m.practiceCursor++
				m.refreshContent()
			}
			return m, nil
		case "enter", " ":
			m.expanded[m.practiceCursor] = !m.expanded[m.practiceCursor]
			m.refreshContent()
			return m, nil
		}
	}

	// Remaining keys scroll the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setPage switches the active page, resetting the leaving page's
// ephemeral state, and re-projects the new page from the report.
func (m *Model) setPage(page Page) {
	if page == m.page || page < PageOverview || page >= pageCount {
		return
	}

	switch m.page {
	case PageDocuments:
		m.docCursor = -1
	case PageCompliance:
		m.practiceCursor = 0
		m.expanded = map[int]bool{}
	}

	m.page = page
	m.refreshContent()
	m.viewport.GotoTop()
}

// refreshContent re-projects the active page into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	var body string
	switch m.page {
	case PageOverview:
		body = renderOverview(m.styles, view.ProjectOverview(m.report))
	case PageDocuments:
		body = renderDocuments(m.styles, m.report, m.docCursor)
	case PageTerminology:
		body = renderTerminology(m.styles, view.ProjectTerminology(m.report))
	case PageCompliance:
		body = renderCompliance(m.styles, view.ProjectCompliance(m.report), m.practiceCursor, m.expanded)
	case PageRedundancy:
		body = renderRedundancy(m.styles, view.ProjectRedundancy(m.report))
	case PageRecommendations:
		body = renderRecommendations(m.styles, view.ProjectRecommendations(m.report))
	}

	m.viewport.SetContent(body)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}

	header := m.styles.Header.Render("doclens — " + m.page.Title())

	contentHeight := max(m.height-headerHeight-footerHeight-2, 5)
	sidebar := m.styles.Sidebar.
		Width(sidebarWidth).
		Height(contentHeight).
		Render(m.renderSidebar())

	content := m.styles.Content.Render(m.viewport.View())

	row := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	return strings.Join([]string{header, row, m.styles.Footer.Render(m.helpLine())}, "\n")
}

// renderSidebar renders the page navigator.
func (m Model) renderSidebar() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Bold.Render("Navigation"))
	sb.WriteString("\n\n")

	for _, page := range Pages() {
		if page == m.page {
			sb.WriteString(m.styles.NavActive.Render("▸ " + page.Title()))
		} else {
			sb.WriteString(m.styles.NavInactive.Render("  " + page.Title()))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	// Padding and the right border leave sidebarWidth-5 columns of text.
	sb.WriteString(m.styles.RenderDivider(sidebarWidth - 5))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("This dashboard visualizes the analysis of your documentation."))

	return sb.String()
}

// helpLine returns the context-sensitive key help for the footer.
func (m Model) helpLine() string {
	if m.focus == focusSidebar {
		return "↑/↓ page • enter open • 1-6 jump • q quit"
	}

	switch m.page {
	case PageDocuments:
		return "↑/↓ document • esc back • q quit"
	case PageCompliance:
		return "↑/↓ practice • enter expand • esc back • q quit"
	default:
		return "↑/↓ scroll • esc back • q quit"
	}
}
