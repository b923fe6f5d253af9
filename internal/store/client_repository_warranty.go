package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/utils"
	"github.com/akhmetshin/warranty-keeper/models"
)

// LocalWarrantyRepository is the SQLite-backed implementation of
// [WarrantyRepository]. All mutations are serialised through the DB write
// mutex and observers are notified only after a successful commit.
type LocalWarrantyRepository struct {
	db     *DB
	logger *logger.Logger
	uuid   *utils.UUIDGenerator

	subMu   sync.Mutex
	subs    map[int]*statusSubscription
	nextSub int
}

type statusSubscription struct {
	query models.StatusQuery
	ch    chan []models.WarrantyRecord
}

// NewLocalWarrantyRepository constructs a repository over an open client DB.
func NewLocalWarrantyRepository(db *DB, log *logger.Logger) *LocalWarrantyRepository {
	return &LocalWarrantyRepository{
		db:     db,
		logger: log,
		uuid:   utils.NewUUIDGenerator(),
		subs:   make(map[int]*statusSubscription),
	}
}

// Create inserts a new record from the draft. The record gets a fresh local
// identifier, status "created" and identical created/updated stamps.
func (r *LocalWarrantyRepository) Create(ctx context.Context, draft models.WarrantyDraft) (models.WarrantyRecord, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	record := models.WarrantyRecord{
		LocalID:              r.uuid.Generate(),
		ProductName:          draft.ProductName,
		PurchaseDate:         draft.PurchaseDate,
		WarrantyLengthMonths: draft.WarrantyLengthMonths,
		Category:             draft.Category,
		Description:          draft.Description,
		ProductImageURL:      draft.ProductImageURL,
		ReceiptsBlob:         models.EncodeReceipts(draft.Receipts),
		Status:               models.StatusCreated,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	_, err := r.db.ExecContext(ctx, insertWarrantyQuery, warrantyArgs(record)...)
	if err != nil {
		r.logger.Err(err).Str("func", "Create").Msg("error inserting warranty")
		return models.WarrantyRecord{}, errors.Join(ErrExecutingStatement, err)
	}

	r.notifyObservers(ctx)

	return record, nil
}

// Update loads the record, applies the mutator and persists the result with a
// strictly increasing updated_at stamp. The mutator may change any field
// except the local identifier and the stamps; returning an error aborts the
// update.
func (r *LocalWarrantyRepository) Update(ctx context.Context, localID string, mutate func(*models.WarrantyRecord) error) (models.WarrantyRecord, error) {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	record, err := r.findByLocalID(ctx, r.db.DB, localID)
	if err != nil {
		return models.WarrantyRecord{}, err
	}

	prev := record
	if err := mutate(&record); err != nil {
		return models.WarrantyRecord{}, err
	}
	record.LocalID = prev.LocalID
	record.CreatedAt = prev.CreatedAt
	record.UpdatedAt = nextStamp(prev.UpdatedAt)

	if err := r.execUpdate(ctx, r.db.DB, record); err != nil {
		r.logger.Err(err).Str("func", "Update").Str("local_id", localID).Msg("error updating warranty")
		return models.WarrantyRecord{}, err
	}

	r.notifyObservers(ctx)

	return record, nil
}

// FindByLocalID returns the record with the given local identifier, or
// [ErrWarrantyNotFound].
func (r *LocalWarrantyRepository) FindByLocalID(ctx context.Context, localID string) (models.WarrantyRecord, error) {
	return r.findByLocalID(ctx, r.db.DB, localID)
}

// FindByServerID returns the record linked to the given server identifier, or
// [ErrWarrantyNotFound] when no local row is linked to it yet.
func (r *LocalWarrantyRepository) FindByServerID(ctx context.Context, serverID string) (models.WarrantyRecord, error) {
	row := r.db.QueryRowContext(ctx, selectWarrantyByServerIDQuery, serverID)

	record, err := scanWarranty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WarrantyRecord{}, ErrWarrantyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "FindByServerID").Msg("error querying warranty")
		return models.WarrantyRecord{}, errors.Join(ErrExecutingQuery, err)
	}

	return record, nil
}

// QueryByStatus returns all records matching the status query, ordered by
// creation time.
func (r *LocalWarrantyRepository) QueryByStatus(ctx context.Context, query models.StatusQuery) ([]models.WarrantyRecord, error) {
	return r.queryByStatus(ctx, r.db.DB, query)
}

// Destroy removes the row outright. Use it only for records the server never
// saw; everything else goes through the deleted status and the sync cycle.
func (r *LocalWarrantyRepository) Destroy(ctx context.Context, localID string) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	res, err := r.db.ExecContext(ctx, deleteWarrantyByLocalIDQuery, localID)
	if err != nil {
		r.logger.Err(err).Str("func", "Destroy").Str("local_id", localID).Msg("error deleting warranty")
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrWarrantyNotFound
	}

	r.notifyObservers(ctx)

	return nil
}

// ResetAll wipes every record and the pull cursor. Used on logout and before
// the first pull of a fresh login.
func (r *LocalWarrantyRepository) ResetAll(ctx context.Context) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	if err := r.resetAll(ctx, r.db.DB); err != nil {
		r.logger.Err(err).Str("func", "ResetAll").Msg("error wiping warranties")
		return err
	}

	r.notifyObservers(ctx)

	return nil
}

// ApplyBatch implements [WarrantyRepository]. Either every save and cursor
// write in the batch lands, or none of them do.
func (r *LocalWarrantyRepository) ApplyBatch(ctx context.Context, fn func(batch RecordBatch) error) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "ApplyBatch").Msg("error beginning transaction")
		return errors.Join(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	batch := &recordBatch{ctx: ctx, tx: tx, repo: r}
	if err := fn(batch); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "ApplyBatch").Msg("error committing transaction")
		return errors.Join(ErrCommittingTransaction, err)
	}

	r.notifyObservers(ctx)

	return nil
}

// Subscribe implements [WarrantyRepository]. The channel carries the latest
/// snapshot only: a slow consumer sees stale snapshots replaced, not queued.
func (r *LocalWarrantyRepository) Subscribe(query models.StatusQuery) (<-chan []models.WarrantyRecord, func()) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	id := r.nextSub
	r.nextSub++

	sub := &statusSubscription{
		query: query,
		ch:    make(chan []models.WarrantyRecord, 1),
	}
	r.subs[id] = sub

	cancel := func() {
		r.subMu.Lock()
		defer r.subMu.Unlock()

		if s, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(s.ch)
		}
	}

	return sub.ch, cancel
}

func (r *LocalWarrantyRepository) notifyObservers(ctx context.Context) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	for _, sub := range r.subs {
		snapshot, err := r.queryByStatus(ctx, r.db.DB, sub.query)
		if err != nil {
			r.logger.Err(err).Str("func", "notifyObservers").Msg("error building snapshot")
			continue
		}

		select {
		case sub.ch <- snapshot:
		default:
			// replace the stale pending snapshot
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- snapshot
		}
	}
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *LocalWarrantyRepository) findByLocalID(ctx context.Context, q querier, localID string) (models.WarrantyRecord, error) {
	row := q.QueryRowContext(ctx, selectWarrantyByLocalIDQuery, localID)

	record, err := scanWarranty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WarrantyRecord{}, ErrWarrantyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "findByLocalID").Msg("error querying warranty")
		return models.WarrantyRecord{}, errors.Join(ErrExecutingQuery, err)
	}

	return record, nil
}

func (r *LocalWarrantyRepository) queryByStatus(ctx context.Context, q querier, query models.StatusQuery) ([]models.WarrantyRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	switch {
	case query.Is != "":
		rows, err = q.QueryContext(ctx, selectWarrantiesByStatusQuery, string(query.Is))
	case query.Not != "":
		rows, err = q.QueryContext(ctx, selectWarrantiesNotStatusQuery, string(query.Not))
	default:
		rows, err = q.QueryContext(ctx, selectAllWarrantiesOrderedQuery)
	}
	if err != nil {
		r.logger.Err(err).Str("func", "queryByStatus").Msg("error querying warranties")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.WarrantyRecord
	for rows.Next() {
		record, err := scanWarranty(rows)
		if err != nil {
			return nil, errors.Join(ErrExecutingQuery, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return records, nil
}

func (r *LocalWarrantyRepository) execUpdate(ctx context.Context, q querier, record models.WarrantyRecord) error {
	res, err := q.ExecContext(ctx, updateWarrantyQuery, append(warrantyArgs(record)[1:], record.LocalID)...)
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrWarrantyNotFound
	}

	return nil
}

func (r *LocalWarrantyRepository) resetAll(ctx context.Context, q querier) error {
	if _, err := q.ExecContext(ctx, deleteAllWarrantiesQuery); err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if _, err := q.ExecContext(ctx, deleteSyncStateQuery, lastPulledAtKey); err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// recordBatch implements [RecordBatch] over an open transaction.
type recordBatch struct {
	ctx  context.Context
	tx   *sql.Tx
	repo *LocalWarrantyRepository
}

func (b *recordBatch) FindByServerID(serverID string) (models.WarrantyRecord, bool, error) {
	row := b.tx.QueryRowContext(b.ctx, selectWarrantyByServerIDQuery, serverID)

	record, err := scanWarranty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WarrantyRecord{}, false, nil
	}
	if err != nil {
		return models.WarrantyRecord{}, false, errors.Join(ErrExecutingQuery, err)
	}

	return record, true, nil
}

// Save inserts the record or replaces the existing row with the same local
// identifier. Unlike [LocalWarrantyRepository.Update] it writes the record
// verbatim: pull reconciliation decides the stamps, not the store.
func (b *recordBatch) Save(record models.WarrantyRecord) error {
	res, err := b.tx.ExecContext(b.ctx, updateWarrantyQuery, append(warrantyArgs(record)[1:], record.LocalID)...)
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected > 0 {
		return nil
	}

	if _, err := b.tx.ExecContext(b.ctx, insertWarrantyQuery, warrantyArgs(record)...); err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

func (b *recordBatch) ResetAll() error {
	return b.repo.resetAll(b.ctx, b.tx)
}

func (b *recordBatch) SetLastPulledAt(ms int64) error {
	if _, err := b.tx.ExecContext(b.ctx, upsertSyncStateQuery, lastPulledAtKey, strconv.FormatInt(ms, 10)); err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// warrantyArgs flattens a record into the column order shared by the insert
// and update statements.
func warrantyArgs(record models.WarrantyRecord) []any {
	var serverID sql.NullString
	if record.ServerID != "" {
		serverID = sql.NullString{String: record.ServerID, Valid: true}
	}

	return []any{
		record.LocalID,
		serverID,
		record.ProductName,
		record.PurchaseDate.UnixMilli(),
		record.WarrantyLengthMonths,
		record.Category,
		record.Description,
		record.ProductImageURL,
		record.ReceiptsBlob,
		string(record.Status),
		record.CreatedAt.UnixMilli(),
		record.UpdatedAt.UnixMilli(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWarranty(row rowScanner) (models.WarrantyRecord, error) {
	var (
		record       models.WarrantyRecord
		serverID     sql.NullString
		purchaseMs   int64
		createdAtMs  int64
		updatedAtMs  int64
		statusString string
	)

	err := row.Scan(
		&record.LocalID,
		&serverID,
		&record.ProductName,
		&purchaseMs,
		&record.WarrantyLengthMonths,
		&record.Category,
		&record.Description,
		&record.ProductImageURL,
		&record.ReceiptsBlob,
		&statusString,
		&createdAtMs,
		&updatedAtMs,
	)
	if err != nil {
		return models.WarrantyRecord{}, err
	}

	record.ServerID = serverID.String
	record.PurchaseDate = time.UnixMilli(purchaseMs).UTC()
	record.CreatedAt = time.UnixMilli(createdAtMs).UTC()
	record.UpdatedAt = time.UnixMilli(updatedAtMs).UTC()
	record.Status = models.SyncStatus(statusString)

	return record, nil
}

// nextStamp returns the current time, pushed forward one millisecond when the
// clock has not advanced past the previous stamp.
func nextStamp(prev time.Time) time.Time {
	now := time.Now().UTC().Truncate(time.Millisecond)
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}

	return now
}
