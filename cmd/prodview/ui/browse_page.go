package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"prodview/internal/catalog"
	"prodview/internal/logging"
)

// Fetcher is the data source the browser pulls the catalog from.
type Fetcher interface {
	Fetch(ctx context.Context) (*catalog.Listing, error)
}

// status is the fetch lifecycle state of the page.
type status int

const (
	statusLoading status = iota
	statusReady
	statusError
)

// focusArea tracks which control owns keystrokes.
type focusArea int

const (
	focusTable focusArea = iota
	focusSearch
	focusMin
	focusMax
)

// Messages produced by the fetch command.
type catalogMsg struct{ listing *catalog.Listing }
type catalogErrMsg struct{ err error }

// sortColumns maps the number keys 1..5 onto table columns.
var sortColumns = []catalog.Column{
	catalog.ColumnID,
	catalog.ColumnTitle,
	catalog.ColumnBrand,
	catalog.ColumnCategory,
	catalog.ColumnPrice,
}

// BrowsePage is the interactive catalog browser: a toolbar of filter
// controls over a sortable, paginated product table, plus the loading and
// error states around the fetch.
type BrowsePage struct {
	width  int
	height int

	fetcher Fetcher
	styles  Styles
	logger  *zap.Logger

	// Components
	table    table.Model
	search   textinput.Model
	minPrice textinput.Model
	maxPrice textinput.Model
	spin     spinner.Model

	// Fetch state
	status status
	errMsg string

	// Data
	products   []catalog.Product // full record list, read-only after arrival
	visible    []catalog.Product // filtered + sorted subset
	categories []string          // derived from the full list
	brands     []string

	// Filter / sort / pagination state
	criteria    catalog.Criteria
	categoryIdx int // 0 = all
	brandIdx    int // 0 = all
	order       catalog.Order
	pager       catalog.Pager
	focus       focusArea
}

// NewBrowsePage creates the browser bound to the given data source.
func NewBrowsePage(fetcher Fetcher, pageSize int, styles Styles) BrowsePage {
	t := table.New(
		table.WithColumns(browseColumns(catalog.Order{}, 0)),
		table.WithFocused(true),
		table.WithHeight(catalog.DefaultPageSize+1),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		Bold(true).
		Foreground(styles.Theme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Theme.Border).
		BorderBottom(true)
	ts.Selected = ts.Selected.
		Foreground(styles.Theme.Foreground).
		Background(styles.Theme.Selection).
		Bold(false)
	t.SetStyles(ts)

	search := textinput.New()
	search.Placeholder = "search title, brand, category..."
	search.CharLimit = 64
	search.Width = 30

	minIn := textinput.New()
	minIn.Placeholder = "min"
	minIn.CharLimit = 10
	minIn.Width = 6

	maxIn := textinput.New()
	maxIn.Placeholder = "max"
	maxIn.CharLimit = 10
	maxIn.Width = 6

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return BrowsePage{
		fetcher:  fetcher,
		styles:   styles,
		logger:   logging.Get(logging.CategoryUI),
		table:    t,
		search:   search,
		minPrice: minIn,
		maxPrice: maxIn,
		spin:     sp,
		status:   statusLoading,
		pager:    catalog.NewPager(pageSize),
	}
}

// fetchCmd issues one fetch against the data source. A refresh while a
// request is in flight just issues another one; the last response to arrive
// wins.
func (m BrowsePage) fetchCmd() tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		listing, err := fetcher.Fetch(context.Background())
		if err != nil {
			return catalogErrMsg{err: err}
		}
		return catalogMsg{listing: listing}
	}
}

// Init starts the spinner and the initial fetch.
func (m BrowsePage) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd())
}

// Update handles messages.
func (m BrowsePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case catalogMsg:
		m.status = statusReady
		m.errMsg = ""
		m.products = msg.listing.Products
		m.categories = catalog.Categories(m.products)
		m.brands = catalog.Brands(m.products)
		m.clampSelectors()
		m.logger.Info("catalog loaded", zap.Int("records", len(m.products)))
		m.refresh(false)
		return m, nil

	case catalogErrMsg:
		m.status = statusError
		m.errMsg = msg.err.Error()
		m.logger.Warn("catalog fetch failed", zap.String("error", m.errMsg))
		return m, nil

	case spinner.TickMsg:
		if m.status == statusLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes keystrokes by focus area and fetch state.
func (m BrowsePage) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Quit works from anywhere except an active text input ("q" is text).
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.focus != focusTable {
		return m.handleInputKey(msg)
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit

	case "r":
		// Manual refresh / retry. No cancellation of any in-flight request.
		m.status = statusLoading
		m.errMsg = ""
		return m, tea.Batch(m.spin.Tick, m.fetchCmd())
	}

	if m.status != statusReady {
		return m, nil
	}

	switch key {
	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()
	case "m":
		m.focus = focusMin
		return m, m.minPrice.Focus()
	case "M":
		m.focus = focusMax
		return m, m.maxPrice.Focus()

	case "c":
		m.cycleCategory(1)
	case "C":
		m.cycleCategory(-1)
	case "b":
		m.cycleBrand(1)
	case "B":
		m.cycleBrand(-1)

	case "x":
		m.clearFilters()

	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		m.order = m.order.Cycle(sortColumns[idx])
		m.refresh(false)

	case "left", "h":
		m.pager.Prev()
		m.syncTable()
	case "right", "l":
		m.pager.Next()
		m.syncTable()
	case "g", "home":
		m.pager.First()
		m.syncTable()
	case "G", "end":
		m.pager.Last()
		m.syncTable()

	case "+", "=":
		m.cyclePageSize(1)
	case "-":
		m.cyclePageSize(-1)

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleInputKey feeds keystrokes to the focused text input and re-filters
// live on every change.
func (m BrowsePage) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.blurInputs()
		m.focus = focusTable
		return m, nil
	case "tab":
		m.blurInputs()
		switch m.focus {
		case focusSearch:
			m.focus = focusMin
			return m, m.minPrice.Focus()
		case focusMin:
			m.focus = focusMax
			return m, m.maxPrice.Focus()
		default:
			m.focus = focusSearch
			return m, m.search.Focus()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusMin:
		m.minPrice, cmd = m.minPrice.Update(msg)
	case focusMax:
		m.maxPrice, cmd = m.maxPrice.Update(msg)
	}
	m.readCriteria()
	return m, cmd
}

func (m *BrowsePage) blurInputs() {
	m.search.Blur()
	m.minPrice.Blur()
	m.maxPrice.Blur()
}

// readCriteria rebuilds the criteria from the controls. Any change resets
// pagination to the first page.
func (m *BrowsePage) readCriteria() {
	next := catalog.Criteria{
		Query:    m.search.Value(),
		MinPrice: m.minPrice.Value(),
		MaxPrice: m.maxPrice.Value(),
	}
	if m.categoryIdx > 0 && m.categoryIdx <= len(m.categories) {
		next.Category = m.categories[m.categoryIdx-1]
	}
	if m.brandIdx > 0 && m.brandIdx <= len(m.brands) {
		next.Brand = m.brands[m.brandIdx-1]
	}

	if next == m.criteria {
		return
	}
	m.criteria = next
	m.refresh(true)
}

func (m *BrowsePage) cycleCategory(delta int) {
	n := len(m.categories) + 1 // slot 0 is "all"
	m.categoryIdx = ((m.categoryIdx+delta)%n + n) % n
	m.readCriteria()
}

func (m *BrowsePage) cycleBrand(delta int) {
	n := len(m.brands) + 1
	m.brandIdx = ((m.brandIdx+delta)%n + n) % n
	m.readCriteria()
}

func (m *BrowsePage) cyclePageSize(delta int) {
	cur := 0
	for i, s := range catalog.PageSizes {
		if s == m.pager.Size() {
			cur = i
		}
	}
	n := len(catalog.PageSizes)
	next := catalog.PageSizes[((cur+delta)%n+n)%n]
	m.pager.SetSize(next)
	m.syncTable()
}

func (m *BrowsePage) clearFilters() {
	m.search.SetValue("")
	m.minPrice.SetValue("")
	m.maxPrice.SetValue("")
	m.categoryIdx = 0
	m.brandIdx = 0
	m.readCriteria()
}

func (m *BrowsePage) clampSelectors() {
	if m.categoryIdx > len(m.categories) {
		m.categoryIdx = 0
	}
	if m.brandIdx > len(m.brands) {
		m.brandIdx = 0
	}
}

// refresh recomputes the filtered subset from the full list and the current
// criteria. The subset is always derived fresh, never patched in place.
func (m *BrowsePage) refresh(resetPage bool) {
	filtered := catalog.Apply(m.products, m.criteria)
	m.visible = m.order.Apply(filtered)
	if resetPage {
		m.pager.Reset()
	}
	m.pager.SetTotal(len(m.visible))
	m.syncTable()
}

// syncTable pushes the current page of the visible subset into the table.
func (m *BrowsePage) syncTable() {
	m.table.SetColumns(browseColumns(m.order, m.width))

	page := m.pager.Slice(m.visible)
	rows := make([]table.Row, 0, len(page))
	for _, p := range page {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", p.ID),
			p.Title,
			p.Brand,
			p.Category,
			fmt.Sprintf("%.2f", p.Price),
		})
	}
	m.table.SetRows(rows)
	m.table.SetHeight(m.pager.Size() + 1)
	m.table.GotoTop()
}

// browseColumns builds the table columns with a sort marker on the active
// one.
func browseColumns(order catalog.Order, width int) []table.Column {
	marker := func(col catalog.Column) string {
		if order.Direction == catalog.Unsorted || order.Column != col {
			return ""
		}
		if order.Direction == catalog.Ascending {
			return " ▲"
		}
		return " ▼"
	}

	titleWidth := 34
	if width > 100 {
		titleWidth = width - 66
	}

	return []table.Column{
		{Title: "ID" + marker(catalog.ColumnID), Width: 6},
		{Title: "Title" + marker(catalog.ColumnTitle), Width: titleWidth},
		{Title: "Brand" + marker(catalog.ColumnBrand), Width: 18},
		{Title: "Category" + marker(catalog.ColumnCategory), Width: 16},
		{Title: "Price" + marker(catalog.ColumnPrice), Width: 10},
	}
}

func (m *BrowsePage) setSize(w, h int) {
	m.width = w
	m.height = h
	m.search.Width = 30
	if w < 80 {
		m.search.Width = 18
	}
	m.syncTable()
}

// View renders the page.
func (m BrowsePage) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" prodview · product catalog ") + "\n\n")

	switch m.status {
	case statusLoading:
		sb.WriteString(m.spin.View() + m.styles.Body.Render(" loading catalog..."))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("[q] quit"))
		return sb.String()

	case statusError:
		sb.WriteString(m.styles.ErrorBanner.Render("Could not load catalog: "+m.errMsg) + "\n\n")
		sb.WriteString(m.styles.Muted.Render("[r] retry  [q] quit"))
		return sb.String()
	}

	sb.WriteString(m.renderFilterBar() + "\n\n")

	if len(m.visible) == 0 {
		sb.WriteString(m.styles.Muted.Render("No products match the current filters.") + "\n\n")
		sb.WriteString(m.styles.Muted.Render("[x] clear filters  [q] quit"))
		return sb.String()
	}

	sb.WriteString(m.table.View() + "\n")
	sb.WriteString(m.renderStatusBar() + "\n")
	sb.WriteString(m.renderHelp())
	return sb.String()
}

// renderFilterBar renders the search box, price bounds, and the two
// selectors.
func (m BrowsePage) renderFilterBar() string {
	var sb strings.Builder

	box := func(focused bool, content string) string {
		if focused {
			return m.styles.FilterFocus.Render(content)
		}
		return m.styles.FilterBox.Render(content)
	}

	sb.WriteString(box(m.focus == focusSearch, m.search.View()))
	sb.WriteString(" ")
	sb.WriteString(box(m.focus == focusMin, m.minPrice.View()))
	sb.WriteString(box(m.focus == focusMax, m.maxPrice.View()))
	sb.WriteString("  ")

	category := "all"
	if m.categoryIdx > 0 && m.categoryIdx <= len(m.categories) {
		category = m.categories[m.categoryIdx-1]
	}
	brand := "all"
	if m.brandIdx > 0 && m.brandIdx <= len(m.brands) {
		brand = m.brands[m.brandIdx-1]
	}

	renderTag := func(label, value string) string {
		if value != "all" {
			return m.styles.ActiveTag.Render(label + ":" + value)
		}
		return m.styles.Muted.Render(label + ":" + value)
	}
	sb.WriteString(renderTag("category", category))
	sb.WriteString("  ")
	sb.WriteString(renderTag("brand", brand))

	return sb.String()
}

// renderStatusBar shows pagination and filter counts.
func (m BrowsePage) renderStatusBar() string {
	parts := []string{
		fmt.Sprintf("page %d/%d", m.pager.Index()+1, m.pager.PageCount()),
		fmt.Sprintf("%d of %d products", len(m.visible), len(m.products)),
		fmt.Sprintf("size %d", m.pager.Size()),
	}
	if m.order.Direction != catalog.Unsorted {
		dir := "asc"
		if m.order.Direction == catalog.Descending {
			dir = "desc"
		}
		parts = append(parts, fmt.Sprintf("sort %s %s", m.order.Column, dir))
	}
	return m.styles.Info.Render(strings.Join(parts, "  ·  "))
}

func (m BrowsePage) renderHelp() string {
	return m.styles.Footer.Render(
		"[/] search  [m]/[M] min/max price  [c]/[b] category/brand  [1-5] sort  [←/→] page  [g/G] first/last  [+/-] size  [x] clear  [r] refresh  [q] quit",
	)
}
