package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/models"
)

// warrantyColumns is the column list shared by every RETURNING clause and
// SELECT against the server warranties table.
var warrantyColumns = []string{
	"id", "product_name", "purchase_date", "warranty_length_months",
	"category", "description", "product_image_url", "receipts",
}

// serverWarrantyRepository is the PostgreSQL-backed implementation of
// [ServerWarrantyRepository]. Queries are built with squirrel so the column
// list stays in one place.
type serverWarrantyRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewServerWarrantyRepository constructs a [ServerWarrantyRepository] backed
// by the provided database connection and logger.
func NewServerWarrantyRepository(db *DB, logger *logger.Logger) ServerWarrantyRepository {
	logger.Debug().Msg("creating warranty repository")
	return &serverWarrantyRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert stores a new warranty under the given server identifier. The
// updated_at stamp is assigned by the database so ChangesSince ordering never
// depends on client clocks.
func (r *serverWarrantyRepository) Insert(ctx context.Context, userID int64, id string, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("warranties").
		Columns("id", "user_id", "product_name", "purchase_date", "warranty_length_months",
			"category", "description", "product_image_url", "receipts").
		Values(id, userID, payload.ProductName, payload.PurchaseDate, payload.WarrantyLengthMonths,
			payload.Category, payload.Description, payload.ProductImageURL, models.EncodeReceipts(payload.Receipts)).
		Suffix(returningClause()).
		ToSql()
	if err != nil {
		return models.ServerWarranty{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	saved, err := scanServerWarranty(row)
	if err != nil {
		log.Err(err).Str("func", "*serverWarrantyRepository.Insert").Msg("error inserting warranty")
		return models.ServerWarranty{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// Replace overwrites every editable field of the warranty and bumps
// updated_at. Targeting a warranty that does not exist (or belongs to another
// user) returns [ErrWarrantyNotFound].
func (r *serverWarrantyRepository) Replace(ctx context.Context, userID int64, id string, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update("warranties").
		Set("product_name", payload.ProductName).
		Set("purchase_date", payload.PurchaseDate).
		Set("warranty_length_months", payload.WarrantyLengthMonths).
		Set("category", payload.Category).
		Set("description", payload.Description).
		Set("product_image_url", payload.ProductImageURL).
		Set("receipts", models.EncodeReceipts(payload.Receipts)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningClause()).
		ToSql()
	if err != nil {
		return models.ServerWarranty{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	saved, err := scanServerWarranty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServerWarranty{}, ErrWarrantyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*serverWarrantyRepository.Replace").Msg("error updating warranty")
		return models.ServerWarranty{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// Delete removes the warranty outright.
func (r *serverWarrantyRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("warranties").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*serverWarrantyRepository.Delete").Msg("error deleting warranty")
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrWarrantyNotFound
	}

	return nil
}

// ChangesSince returns every warranty of the user whose updated_at is
// strictly after since, oldest first.
func (r *serverWarrantyRepository) ChangesSince(ctx context.Context, userID int64, since time.Time) ([]models.ServerWarranty, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(warrantyColumns...).
		From("warranties").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at", "id").
		ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*serverWarrantyRepository.ChangesSince").Msg("error querying changes")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var changes []models.ServerWarranty
	for rows.Next() {
		warranty, err := scanServerWarranty(rows)
		if err != nil {
			return nil, errors.Join(ErrExecutingQuery, err)
		}
		changes = append(changes, warranty)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return changes, nil
}

func returningClause() string {
	clause := "RETURNING "
	for i, col := range warrantyColumns {
		if i > 0 {
			clause += ", "
		}
		clause += col
	}

	return clause
}

func scanServerWarranty(row rowScanner) (models.ServerWarranty, error) {
	var (
		warranty     models.ServerWarranty
		receiptsBlob string
	)

	err := row.Scan(
		&warranty.ServerID,
		&warranty.ProductName,
		&warranty.PurchaseDate,
		&warranty.WarrantyLengthMonths,
		&warranty.Category,
		&warranty.Description,
		&warranty.ProductImageURL,
		&receiptsBlob,
	)
	if err != nil {
		return models.ServerWarranty{}, err
	}

	warranty.Receipts = models.DecodeReceipts(receiptsBlob)

	return warranty, nil
}
