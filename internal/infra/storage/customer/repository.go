package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/detailhub/booking-service/internal/domain"
	"github.com/detailhub/booking-service/pkg/dbmetrics"
	"github.com/detailhub/booking-service/pkg/psqlbuilder"
)

// Repository is the storage access layer for customer loyalty state and the
// loyalty transaction ledger.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetLoyalty fetches a customer's loyalty state.
func (r *Repository) GetLoyalty(ctx context.Context, customerID int64) (*domain.CustomerLoyalty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"loyalty_points",
		"loyalty_tier",
		"total_spent",
		"last_service_date",
		"updated_at",
	).
		From("customers").
		Where(squirrel.Eq{"id": customerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLoyalty - build select query: %v", ErrBuildQuery, err)
	}

	var loyalty domain.CustomerLoyalty
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&loyalty.CustomerID,
		&loyalty.Name,
		&loyalty.Email,
		&loyalty.Points,
		&loyalty.Tier,
		&loyalty.TotalSpent,
		&loyalty.LastServiceDate,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLoyalty - scan customer: %v", ErrScanRow, err)
	}

	loyalty.UpdatedAt = updatedAt.Time

	return &loyalty, nil
}

// GetEmailByID returns a customer's email address. Booking history is keyed
// by email because bookings are taken without an account.
func (r *Repository) GetEmailByID(ctx context.Context, customerID int64) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("email").
		From("customers").
		Where(squirrel.Eq{"id": customerID}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetEmailByID - build select query: %v", ErrBuildQuery, err)
	}

	var email string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&email)
	if err == sql.ErrNoRows {
		return "", ErrCustomerNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetEmailByID - scan email: %v", ErrScanRow, err)
	}

	return email, nil
}

// AdjustPoints applies a signed delta to a customer's point balance. Callers
// must pair this with InsertTransaction inside one transaction so the ledger
// and the balance cannot diverge.
func (r *Repository) AdjustPoints(ctx context.Context, customerID int64, delta int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("loyalty_points", squirrel.Expr("loyalty_points + ?", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AdjustPoints - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AdjustPoints - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AdjustPoints - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// InsertTransaction appends an immutable row to the loyalty ledger.
func (r *Repository) InsertTransaction(ctx context.Context, tx *domain.LoyaltyTransaction) (*domain.LoyaltyTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loyalty_transactions").
		Columns(
			"customer_id",
			"transaction_type",
			"points",
			"description",
			"order_id",
			"booking_id",
		).
		Values(
			tx.CustomerID,
			tx.Type,
			tx.Points,
			tx.Description,
			tx.OrderID,
			tx.BookingID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: InsertTransaction - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tx.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: InsertTransaction - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time

	return tx, nil
}

// UpdateTier writes a customer's recomputed tier.
func (r *Repository) UpdateTier(ctx context.Context, customerID int64, tier domain.Tier) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("loyalty_tier", tier).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTier - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTier - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTier - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// AddSpend increments a customer's lifetime spend and stamps the last
// service date. Tier recomputation is a separate call.
func (r *Repository) AddSpend(ctx context.Context, customerID int64, amount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("total_spent", squirrel.Expr("total_spent + ?", amount)).
		Set("last_service_date", squirrel.Expr("CURRENT_DATE")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddSpend - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddSpend - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddSpend - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// ListTransactions returns a customer's ledger, newest first.
func (r *Repository) ListTransactions(ctx context.Context, customerID int64) ([]*domain.LoyaltyTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_id",
		"transaction_type",
		"points",
		"description",
		"order_id",
		"booking_id",
		"created_at",
	).
		From("loyalty_transactions").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.LoyaltyTransaction, 0)
	for rows.Next() {
		var tx domain.LoyaltyTransaction
		var createdAt sql.NullTime

		err := rows.Scan(
			&tx.ID,
			&tx.CustomerID,
			&tx.Type,
			&tx.Points,
			&tx.Description,
			&tx.OrderID,
			&tx.BookingID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTransactions - scan row: %v", ErrScanRow, err)
		}

		tx.CreatedAt = createdAt.Time
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// ListCustomerIDs returns every customer ID, used by the nightly tier
// recompute job.
func (r *Repository) ListCustomerIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("customers").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomerIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomerIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListCustomerIDs - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCustomerIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}
