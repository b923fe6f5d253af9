package store

// SQL statements used by the SQLite-backed warranty repository.
const (
	insertWarrantyQuery = `
		INSERT INTO warranties (local_id, server_id, product_name, purchase_date, warranty_length_months,
		                        category, description, product_image_url, receipts_blob, sync_status,
		                        created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateWarrantyQuery = `
		UPDATE warranties
		SET server_id              = ?,
		    product_name           = ?,
		    purchase_date          = ?,
		    warranty_length_months = ?,
		    category               = ?,
		    description            = ?,
		    product_image_url      = ?,
		    receipts_blob          = ?,
		    sync_status            = ?,
		    created_at             = ?,
		    updated_at             = ?
		WHERE local_id = ?`

	selectWarrantyColumns = `
		SELECT local_id, server_id, product_name, purchase_date, warranty_length_months,
		       category, description, product_image_url, receipts_blob, sync_status,
		       created_at, updated_at
		FROM warranties`

	selectWarrantyByLocalIDQuery  = selectWarrantyColumns + ` WHERE local_id = ?`
	selectWarrantyByServerIDQuery = selectWarrantyColumns + ` WHERE server_id = ?`

	selectWarrantiesByStatusQuery    = selectWarrantyColumns + ` WHERE sync_status = ? ORDER BY created_at, local_id`
	selectWarrantiesNotStatusQuery   = selectWarrantyColumns + ` WHERE sync_status <> ? ORDER BY created_at, local_id`
	selectAllWarrantiesOrderedQuery  = selectWarrantyColumns + ` ORDER BY created_at, local_id`
	deleteWarrantyByLocalIDQuery     = `DELETE FROM warranties WHERE local_id = ?`
	deleteAllWarrantiesQuery         = `DELETE FROM warranties`
	upsertSyncStateQuery             = `INSERT INTO sync_state (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	selectSyncStateQuery             = `SELECT value FROM sync_state WHERE key = ?`
	deleteSyncStateQuery             = `DELETE FROM sync_state WHERE key = ?`
)

// lastPulledAtKey is the sync_state row holding the pull cursor.
const lastPulledAtKey = "last_pulled_at"
