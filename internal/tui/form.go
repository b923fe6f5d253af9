package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhmetshin/warranty-keeper/models"
)

type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
)

const purchaseDateLayout = "2006-01-02"

const (
	fieldName = iota
	fieldCategory
	fieldPurchaseDate
	fieldMonths
	fieldDescription
	fieldImageURL
	fieldCount
)

// formModel is the shared create and edit form. Editing keeps the record's
// receipt attachments; the form itself never touches them.
type formModel struct {
	inputs  [fieldCount]textinput.Model
	focused int

	localID  string
	receipts []models.Receipt

	parsed models.WarrantyDraft
	errMsg string
}

func newFormModel(record *models.WarrantyRecord) formModel {
	var m formModel

	placeholders := [fieldCount]string{
		"product name",
		"category",
		"purchase date (YYYY-MM-DD)",
		"warranty length, months",
		"description",
		"product image URL",
	}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 256
		m.inputs[i] = input
	}
	m.inputs[fieldName].Focus()

	if record != nil {
		m.localID = record.LocalID
		m.receipts = record.Receipts()
		m.inputs[fieldName].SetValue(record.ProductName)
		m.inputs[fieldCategory].SetValue(record.Category)
		m.inputs[fieldPurchaseDate].SetValue(record.PurchaseDate.Format(purchaseDateLayout))
		m.inputs[fieldMonths].SetValue(strconv.Itoa(record.WarrantyLengthMonths))
		m.inputs[fieldDescription].SetValue(record.Description)
		m.inputs[fieldImageURL].SetValue(record.ProductImageURL)
	}

	return m
}

func (m *formModel) init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) editingID() string { return m.localID }

func (m formModel) draft() models.WarrantyDraft { return m.parsed }

// finish reports the outcome of the submitted save back to the form.
func (m *formModel) finish(err error) {
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m *formModel) update(msg tea.Msg) (formAction, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return formNone, m.updateInputs(msg)
	}

	switch key.String() {
	case "esc":
		return formCancel, nil
	case "tab", "down":
		return formNone, m.focus((m.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return formNone, m.focus((m.focused + fieldCount - 1) % fieldCount)
	case "enter":
		if m.focused < fieldCount-1 {
			return formNone, m.focus(m.focused + 1)
		}
		draft, err := m.parse()
		if err != nil {
			m.errMsg = err.Error()
			return formNone, nil
		}
		m.parsed = draft
		m.errMsg = ""
		return formSubmit, nil
	}

	return formNone, m.updateInputs(msg)
}

func (m *formModel) focus(idx int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = idx
	return m.inputs[m.focused].Focus()
}

func (m *formModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.inputs))
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *formModel) parse() (models.WarrantyDraft, error) {
	purchased, err := time.Parse(purchaseDateLayout, strings.TrimSpace(m.inputs[fieldPurchaseDate].Value()))
	if err != nil {
		return models.WarrantyDraft{}, errInvalidPurchaseDate
	}

	months, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldMonths].Value()))
	if err != nil {
		return models.WarrantyDraft{}, errInvalidWarrantyLength
	}

	return models.WarrantyDraft{
		ProductName:          strings.TrimSpace(m.inputs[fieldName].Value()),
		PurchaseDate:         purchased,
		WarrantyLengthMonths: months,
		Category:             strings.TrimSpace(m.inputs[fieldCategory].Value()),
		Description:          strings.TrimSpace(m.inputs[fieldDescription].Value()),
		ProductImageURL:      strings.TrimSpace(m.inputs[fieldImageURL].Value()),
		Receipts:             m.receipts,
	}, nil
}

func (m formModel) view() string {
	title := "New warranty"
	if m.localID != "" {
		title = "Edit warranty"
	}

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field  enter: save  esc: cancel")
}
