package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWarrantyRecord_ExpiryDate(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		months   int
		want     time.Time
	}{
		{
			name:     "plain year",
			purchase: date(2024, time.March, 15),
			months:   12,
			want:     date(2025, time.March, 15),
		},
		{
			// time.AddDate normalizes: Jan 31 + 1 month overflows
			// February and lands in March.
			name:     "end of month rolls over",
			purchase: date(2024, time.January, 31),
			months:   1,
			want:     date(2024, time.March, 2),
		},
		{
			name:     "leap february",
			purchase: date(2024, time.February, 29),
			months:   12,
			want:     date(2025, time.March, 1),
		},
		{
			name:     "multi year",
			purchase: date(2023, time.June, 1),
			months:   36,
			want:     date(2026, time.June, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := WarrantyRecord{PurchaseDate: tt.purchase, WarrantyLengthMonths: tt.months}
			assert.Equal(t, tt.want, rec.ExpiryDate())
		})
	}
}

func TestWarrantyRecord_MonthsLeft(t *testing.T) {
	rec := WarrantyRecord{PurchaseDate: date(2024, time.January, 10), WarrantyLengthMonths: 12}

	assert.Equal(t, 12, rec.MonthsLeft(date(2024, time.January, 10)))
	assert.Equal(t, 6, rec.MonthsLeft(date(2024, time.July, 10)))
	assert.Equal(t, 5, rec.MonthsLeft(date(2024, time.July, 11)))
	assert.Equal(t, 0, rec.MonthsLeft(date(2025, time.January, 11)))
	assert.Equal(t, 0, rec.MonthsLeft(date(2030, time.January, 1)))
}

func TestWarrantyRecord_Expired(t *testing.T) {
	rec := WarrantyRecord{PurchaseDate: date(2024, time.January, 1), WarrantyLengthMonths: 6}

	assert.False(t, rec.Expired(date(2024, time.June, 30)))
	assert.False(t, rec.Expired(date(2024, time.July, 1)))
	assert.True(t, rec.Expired(date(2024, time.July, 2)))
}

func TestWarrantyRecord_ProgressPercent(t *testing.T) {
	rec := WarrantyRecord{PurchaseDate: date(2024, time.January, 1), WarrantyLengthMonths: 12}

	assert.Equal(t, float64(0), rec.ProgressPercent(date(2023, time.December, 1)))
	assert.Equal(t, float64(100), rec.ProgressPercent(date(2025, time.January, 1)))

	mid := rec.ProgressPercent(date(2024, time.July, 1))
	assert.InDelta(t, 50, mid, 1.0)
}
