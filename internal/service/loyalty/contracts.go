package loyalty

import (
	"context"

	"github.com/detailhub/booking-service/internal/domain"
)

// CustomerRepository is the slice of the customers storage this service needs.
type CustomerRepository interface {
	GetLoyalty(ctx context.Context, customerID int64) (*domain.CustomerLoyalty, error)
	AdjustPoints(ctx context.Context, customerID int64, delta int) error
	InsertTransaction(ctx context.Context, tx *domain.LoyaltyTransaction) (*domain.LoyaltyTransaction, error)
	UpdateTier(ctx context.Context, customerID int64, tier domain.Tier) error
	AddSpend(ctx context.Context, customerID int64, amount float64) error
	ListTransactions(ctx context.Context, customerID int64) ([]*domain.LoyaltyTransaction, error)
	ListCustomerIDs(ctx context.Context) ([]int64, error)
}

// TransactionManager wraps the balance adjust and the ledger insert into one
// unit of work.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
