package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhmetshin/warranty-keeper/models"
)

type detailAction int

const (
	detailNone detailAction = iota
	detailBack
	detailEdit
	detailDelete
)

// detailModel shows a single record. Deletion is a two-step gesture so a
// stray keypress cannot tombstone a record.
type detailModel struct {
	record        models.WarrantyRecord
	confirmDelete bool
}

func newDetailModel(record models.WarrantyRecord) detailModel {
	return detailModel{record: record}
}

func (m *detailModel) update(msg tea.Msg) detailAction {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return detailNone
	}

	if m.confirmDelete {
		if key.String() == "y" {
			return detailDelete
		}
		m.confirmDelete = false
		return detailNone
	}

	switch key.String() {
	case "esc", "backspace", "q":
		return detailBack
	case "e":
		return detailEdit
	case "d":
		m.confirmDelete = true
	}

	return detailNone
}

func (m detailModel) view() string {
	record := m.record
	now := time.Now()

	var b strings.Builder
	writeField := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-16s %s\n", label+":", value)
		}
	}

	writeField("Category", record.Category)
	writeField("Purchased", record.PurchaseDate.Format("2 January 2006"))
	writeField("Warranty", fmt.Sprintf("%d months", record.WarrantyLengthMonths))

	expiry := record.ExpiryDate().Format("2 January 2006")
	if record.Expired(now) {
		expiry += "  " + expiredTag.Render("expired")
	} else {
		expiry += fmt.Sprintf("  (%.0f%% elapsed)", record.ProgressPercent(now))
	}
	writeField("Expires", expiry)

	writeField("Description", record.Description)
	writeField("Image", record.ProductImageURL)
	if receipts := record.Receipts(); len(receipts) > 0 {
		writeField("Receipts", fmt.Sprintf("%d attached", len(receipts)))
	}

	if m.confirmDelete {
		b.WriteString("\n" + errorStyle.Render("Delete this warranty? Press y to confirm."))
	}

	return renderPage(record.ProductName, b.String(), "e: edit  d: delete  esc: back")
}
