package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarrantyPayload_StripsLocalFields(t *testing.T) {
	rec := WarrantyRecord{
		LocalID:              "local-1",
		ServerID:             "srv-1",
		ProductName:          "Washing machine",
		PurchaseDate:         date(2024, time.May, 2),
		WarrantyLengthMonths: 24,
		Category:             "Appliances",
		Description:          "extended warranty",
		ProductImageURL:      "https://img.example.com/wm.png",
		ReceiptsBlob:         `[{"name":"r.jpg","url":"https://files/r.jpg"}]`,
		Status:               StatusUpdated,
		CreatedAt:            date(2024, time.May, 2),
		UpdatedAt:            date(2024, time.June, 2),
	}

	payload := NewWarrantyPayload(rec)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &asMap))
	assert.NotContains(t, asMap, "local_id")
	assert.NotContains(t, asMap, "localId")
	assert.NotContains(t, asMap, "status")
	assert.NotContains(t, asMap, "syncStatus")
	assert.NotContains(t, asMap, "created_at")

	assert.Equal(t, "Washing machine", payload.ProductName)
	assert.Equal(t, []Receipt{{Name: "r.jpg", URL: "https://files/r.jpg"}}, payload.Receipts)
}

func TestNewWarrantyPayload_MalformedReceiptsBlob(t *testing.T) {
	rec := WarrantyRecord{ProductName: "TV", ReceiptsBlob: "{{{"}
	assert.Empty(t, NewWarrantyPayload(rec).Receipts)
}

func TestApplyPayload_PreservesIdentityAndStatus(t *testing.T) {
	rec := WarrantyRecord{
		LocalID:   "local-1",
		ServerID:  "srv-1",
		Status:    StatusUpdated,
		CreatedAt: date(2024, time.January, 1),
	}

	rec.ApplyPayload(WarrantyPayload{
		ProductName:          "Laptop",
		PurchaseDate:         date(2024, time.February, 1),
		WarrantyLengthMonths: 36,
		Category:             "Electronics",
		Receipts:             []Receipt{{Name: "a", URL: "b"}},
	})

	assert.Equal(t, "local-1", rec.LocalID)
	assert.Equal(t, "srv-1", rec.ServerID)
	assert.Equal(t, StatusUpdated, rec.Status)
	assert.Equal(t, date(2024, time.January, 1), rec.CreatedAt)

	assert.Equal(t, "Laptop", rec.ProductName)
	assert.Equal(t, 36, rec.WarrantyLengthMonths)
	assert.Equal(t, `[{"name":"a","url":"b"}]`, rec.ReceiptsBlob)
}
