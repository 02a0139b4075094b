package loyalty

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailhub/booking-service/internal/domain"
	customerRepo "github.com/detailhub/booking-service/internal/infra/storage/customer"
	"github.com/detailhub/booking-service/internal/service/loyalty/models"
	"github.com/detailhub/booking-service/pkg/simpletxmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeCustomerRepo covers the paths that do not need a real transaction.
type fakeCustomerRepo struct {
	loyalty *domain.CustomerLoyalty
	ids     []int64

	loyaltyErr error
	tierErr    error
	spendErr   error

	updatedTier  *domain.Tier
	addedSpend   float64
	transactions []*domain.LoyaltyTransaction
}

func (f *fakeCustomerRepo) GetLoyalty(_ context.Context, _ int64) (*domain.CustomerLoyalty, error) {
	if f.loyaltyErr != nil {
		return nil, f.loyaltyErr
	}
	return f.loyalty, nil
}

func (f *fakeCustomerRepo) AdjustPoints(_ context.Context, _ int64, delta int) error {
	f.loyalty.Points += delta
	return nil
}

func (f *fakeCustomerRepo) InsertTransaction(_ context.Context, tx *domain.LoyaltyTransaction) (*domain.LoyaltyTransaction, error) {
	tx.ID = int64(len(f.transactions) + 1)
	tx.CreatedAt = time.Now()
	f.transactions = append(f.transactions, tx)
	return tx, nil
}

func (f *fakeCustomerRepo) UpdateTier(_ context.Context, _ int64, tier domain.Tier) error {
	if f.tierErr != nil {
		return f.tierErr
	}
	f.updatedTier = &tier
	return nil
}

func (f *fakeCustomerRepo) AddSpend(_ context.Context, _ int64, amount float64) error {
	if f.spendErr != nil {
		return f.spendErr
	}
	f.addedSpend += amount
	return nil
}

func (f *fakeCustomerRepo) ListTransactions(_ context.Context, _ int64) ([]*domain.LoyaltyTransaction, error) {
	return f.transactions, nil
}

func (f *fakeCustomerRepo) ListCustomerIDs(_ context.Context) ([]int64, error) {
	return f.ids, nil
}

// passthroughTxManager runs the function without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func bronzeCustomer() *domain.CustomerLoyalty {
	return &domain.CustomerLoyalty{
		CustomerID: 1,
		Name:       "Dana Reyes",
		Email:      "dana@example.com",
		Points:     100,
		Tier:       domain.TierBronze,
		TotalSpent: 80,
	}
}

func newFakeService(repo *fakeCustomerRepo) *Service {
	return NewService(repo, passthroughTxManager{}, nopLogger{})
}

func TestAppendTransaction_RejectsZeroPoints(t *testing.T) {
	svc := newFakeService(&fakeCustomerRepo{loyalty: bronzeCustomer()})

	_, err := svc.AppendTransaction(context.Background(), 1, &models.AppendTransactionRequest{
		Type:   domain.TransactionEarn,
		Points: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAppendTransaction_RejectsEmptyType(t *testing.T) {
	svc := newFakeService(&fakeCustomerRepo{loyalty: bronzeCustomer()})

	_, err := svc.AppendTransaction(context.Background(), 1, &models.AppendTransactionRequest{
		Type:   "",
		Points: 50,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAppendTransaction_AdjustsBalanceAndAppends(t *testing.T) {
	repo := &fakeCustomerRepo{loyalty: bronzeCustomer()}
	svc := newFakeService(repo)

	resp, err := svc.AppendTransaction(context.Background(), 1, &models.AppendTransactionRequest{
		Type:   domain.TransactionEarn,
		Points: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 150, repo.loyalty.Points)
	assert.Equal(t, 50, resp.Points)
	assert.Len(t, repo.transactions, 1)
}

func TestAppendTransaction_NegativeDeltaAllowed(t *testing.T) {
	repo := &fakeCustomerRepo{loyalty: bronzeCustomer()}
	svc := newFakeService(repo)

	_, err := svc.AppendTransaction(context.Background(), 1, &models.AppendTransactionRequest{
		Type:   domain.TransactionRedeem,
		Points: -75,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, repo.loyalty.Points)
}

// The balance update and the ledger insert must commit or roll back as one
// unit. Driven through the real repository and transaction manager against a
// mocked database.
func TestAppendTransaction_RollsBackOnLedgerFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := customerRepo.NewRepository(db)
	svc := NewService(repo, simpletxmanager.NewTransactionManager(db), nopLogger{})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE customers SET loyalty_points").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO loyalty_transactions").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = svc.AppendTransaction(context.Background(), 1, &models.AppendTransactionRequest{
		Type:   domain.TransactionEarn,
		Points: 50,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendTransaction_CommitsBothWrites(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := customerRepo.NewRepository(db)
	svc := NewService(repo, simpletxmanager.NewTransactionManager(db), nopLogger{})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE customers SET loyalty_points").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO loyalty_transactions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))
	mock.ExpectCommit()

	resp, err := svc.AppendTransaction(context.Background(), 1, &models.AppendTransactionRequest{
		Type:   domain.TransactionEarn,
		Points: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendTransaction_CustomerNotFoundRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := customerRepo.NewRepository(db)
	svc := NewService(repo, simpletxmanager.NewTransactionManager(db), nopLogger{})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE customers SET loyalty_points").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = svc.AppendTransaction(context.Background(), 404, &models.AppendTransactionRequest{
		Type:   domain.TransactionEarn,
		Points: 50,
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeTier_WritesDerivedTier(t *testing.T) {
	customer := bronzeCustomer()
	customer.Points = 600
	repo := &fakeCustomerRepo{loyalty: customer}
	svc := newFakeService(repo)

	resp, err := svc.RecomputeTier(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, repo.updatedTier)
	assert.Equal(t, domain.TierSilver, *repo.updatedTier)
	assert.Equal(t, string(domain.TierSilver), resp.Tier)
}

func TestRecomputeTier_CustomerNotFound(t *testing.T) {
	svc := newFakeService(&fakeCustomerRepo{loyaltyErr: customerRepo.ErrCustomerNotFound})

	_, err := svc.RecomputeTier(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestAddSpend_RejectsNonPositive(t *testing.T) {
	repo := &fakeCustomerRepo{loyalty: bronzeCustomer()}
	svc := newFakeService(repo)

	assert.ErrorIs(t, svc.AddSpend(context.Background(), 1, &models.AddSpendRequest{Amount: 0}), ErrInvalidInput)
	assert.ErrorIs(t, svc.AddSpend(context.Background(), 1, &models.AddSpendRequest{Amount: -10}), ErrInvalidInput)
	assert.Zero(t, repo.addedSpend)
}

func TestAddSpend_DoesNotRecomputeTier(t *testing.T) {
	// 600 spend would be Gold, but AddSpend leaves the tier untouched.
	repo := &fakeCustomerRepo{loyalty: bronzeCustomer()}
	svc := newFakeService(repo)

	require.NoError(t, svc.AddSpend(context.Background(), 1, &models.AddSpendRequest{Amount: 600}))

	assert.Equal(t, 600.0, repo.addedSpend)
	assert.Nil(t, repo.updatedTier)
}

func TestGetTransactions_NewestFirstPassthrough(t *testing.T) {
	repo := &fakeCustomerRepo{
		loyalty: bronzeCustomer(),
		transactions: []*domain.LoyaltyTransaction{
			{ID: 2, CustomerID: 1, Type: domain.TransactionEarn, Points: 30},
			{ID: 1, CustomerID: 1, Type: domain.TransactionEarn, Points: 20},
		},
	}
	svc := newFakeService(repo)

	resp, err := svc.GetTransactions(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, int64(2), resp.Transactions[0].ID)
}

func TestRecomputeAllTiers_SkipsFailures(t *testing.T) {
	customer := bronzeCustomer()
	customer.Points = 1200
	repo := &fakeCustomerRepo{loyalty: customer, ids: []int64{1, 2, 3}, tierErr: nil}
	svc := newFakeService(repo)

	require.NoError(t, svc.RecomputeAllTiers(context.Background()))
	require.NotNil(t, repo.updatedTier)
	assert.Equal(t, domain.TierGold, *repo.updatedTier)
}
