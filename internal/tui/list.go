package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhmetshin/warranty-keeper/models"
)

type listActionKind int

const (
	listActionNone listActionKind = iota
	listActionOpen
	listActionCreate
	listActionSync
	listActionReload
	listActionLogout
	listActionQuit
)

type listAction struct {
	kind   listActionKind
	record models.WarrantyRecord
}

var sortCycle = []models.SortMode{"", models.SortByName, models.SortByExpiryDate, models.SortByPurchaseDate}

var filterCycle = []models.ExpiryFilter{models.FilterAll, models.FilterActive, models.FilterExpired}

// listModel shows the grouped warranty catalogue with search, filtering and
// sorting applied by the local store.
type listModel struct {
	records []models.WarrantyRecord
	grouped []models.WarrantyGroup
	errMsg  string

	cursor int

	searchInput textinput.Model
	searching   bool

	sortIdx   int
	sortDesc  bool
	filterIdx int
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64

	return listModel{searchInput: search}
}

// options translates the current UI state into store list options.
func (m listModel) options() models.ListOptions {
	return models.ListOptions{
		Search: m.searchInput.Value(),
		Filter: filterCycle[m.filterIdx],
		Sort:   sortCycle[m.sortIdx],
		Desc:   m.sortDesc,
	}
}

func (m *listModel) setGroups(grouped []models.WarrantyGroup, err error) {
	m.errMsg = ""
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	m.grouped = grouped
	m.records = m.records[:0]
	for _, group := range grouped {
		m.records = append(m.records, group.Records...)
	}
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *listModel) update(msg tea.Msg) (listAction, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)

	if m.searching {
		if isKey {
			switch key.String() {
			case "enter":
				m.searching = false
				m.searchInput.Blur()
				return listAction{kind: listActionReload}, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				m.searchInput.SetValue("")
				return listAction{kind: listActionReload}, nil
			}
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return listAction{kind: listActionReload}, cmd
	}

	if !isKey {
		return listAction{}, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.records) {
			return listAction{kind: listActionOpen, record: m.records[m.cursor]}, nil
		}
	case "n":
		return listAction{kind: listActionCreate}, nil
	case "s":
		return listAction{kind: listActionSync}, nil
	case "/":
		m.searching = true
		return listAction{}, m.searchInput.Focus()
	case "f":
		m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
		return listAction{kind: listActionReload}, nil
	case "o":
		m.sortIdx = (m.sortIdx + 1) % len(sortCycle)
		return listAction{kind: listActionReload}, nil
	case "O":
		m.sortDesc = !m.sortDesc
		return listAction{kind: listActionReload}, nil
	case "L":
		return listAction{kind: listActionLogout}, nil
	case "q":
		return listAction{kind: listActionQuit}, nil
	}

	return listAction{}, nil
}

func (m listModel) view(status string) string {
	var b strings.Builder

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View() + "\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n\n")
	}

	if len(m.records) == 0 {
		b.WriteString("No warranties yet. Press n to add one.\n")
	}

	now := time.Now()
	flat := 0
	for _, group := range m.grouped {
		b.WriteString(titleStyle.Render(group.Category) + "\n")
		for _, record := range group.Records {
			cursor := "  "
			if flat == m.cursor {
				cursor = "> "
			}
			b.WriteString(cursor + renderListLine(record, now) + "\n")
			flat++
		}
		b.WriteString("\n")
	}

	if status != "" {
		b.WriteString(statusStyle.Render(status) + "\n")
	}

	help := "enter: open  n: new  s: sync  /: search  f: filter  o: sort  O: reverse  L: log out  q: quit"
	return renderPage("Warranties"+m.shapingSuffix(), strings.TrimRight(b.String(), "\n"), help)
}

func (m listModel) shapingSuffix() string {
	var parts []string
	if filter := filterCycle[m.filterIdx]; filter != models.FilterAll {
		parts = append(parts, string(filter))
	}
	if sort := sortCycle[m.sortIdx]; sort != "" {
		suffix := ""
		if m.sortDesc {
			suffix = " desc"
		}
		parts = append(parts, "by "+string(sort)+suffix)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func renderListLine(record models.WarrantyRecord, now time.Time) string {
	if record.Expired(now) {
		return fmt.Sprintf("%s  %s", expiredTag.Render(record.ProductName), statusStyle.Render("expired"))
	}

	months := record.MonthsLeft(now)
	remaining := fmt.Sprintf("%d months left", months)
	if months == 1 {
		remaining = "1 month left"
	}
	if months == 0 {
		remaining = "expires this month"
	}

	return fmt.Sprintf("%s  %s", record.ProductName, statusStyle.Render(remaining))
}
