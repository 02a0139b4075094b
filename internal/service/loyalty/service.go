package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/detailhub/booking-service/internal/domain"
	customerRepo "github.com/detailhub/booking-service/internal/infra/storage/customer"
	"github.com/detailhub/booking-service/internal/service/loyalty/models"
)

// Service maintains the append-only points ledger and the derived loyalty
// state. The ledger and the running balance must never disagree, so every
// append adjusts the balance and inserts the row inside one transaction.
type Service struct {
	customerRepo CustomerRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService creates a loyalty service instance.
func NewService(
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetLoyalty fetches a customer's loyalty state.
func (s *Service) GetLoyalty(ctx context.Context, customerID int64) (*models.LoyaltyResponse, error) {
	s.logger.Info("GetLoyalty: fetching loyalty for customer=%d", customerID)

	loyalty, err := s.customerRepo.GetLoyalty(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetLoyalty: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetLoyalty: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetLoyalty - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLoyalty(loyalty), nil
}

// AppendTransaction adjusts the customer's point balance and appends the
// matching ledger row. Both writes run in one transaction; a failure of
// either rolls the whole unit back, so no partial credit is ever visible.
func (s *Service) AppendTransaction(ctx context.Context, customerID int64, req *models.AppendTransactionRequest) (*models.TransactionResponse, error) {
	s.logger.Info("AppendTransaction: customer=%d, type=%s, points=%d", customerID, req.Type, req.Points)

	if req.Points == 0 {
		s.logger.Warn("AppendTransaction: zero point delta for customer=%d", customerID)
		return nil, fmt.Errorf("%w: points must be non-zero", ErrInvalidInput)
	}
	if req.Type == "" {
		s.logger.Warn("AppendTransaction: empty type for customer=%d", customerID)
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}

	var created *domain.LoyaltyTransaction

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.customerRepo.AdjustPoints(txCtx, customerID, req.Points); err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				s.logger.Warn("AppendTransaction: customer id=%d not found", customerID)
				return ErrCustomerNotFound
			}
			s.logger.Error("AppendTransaction: failed to adjust balance for customer=%d: %v", customerID, err)
			return fmt.Errorf("%w: AppendTransaction - failed to adjust balance: %v", ErrInternal, err)
		}

		tx := &domain.LoyaltyTransaction{
			CustomerID:  customerID,
			Type:        req.Type,
			Points:      req.Points,
			Description: req.Description,
			OrderID:     req.OrderID,
			BookingID:   req.BookingID,
		}

		inserted, err := s.customerRepo.InsertTransaction(txCtx, tx)
		if err != nil {
			s.logger.Error("AppendTransaction: failed to insert ledger row for customer=%d: %v", customerID, err)
			return fmt.Errorf("%w: AppendTransaction - failed to insert ledger row: %v", ErrInternal, err)
		}

		created = inserted
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("AppendTransaction: recorded transaction id=%d for customer=%d", created.ID, customerID)
	return models.FromDomainTransaction(created), nil
}

// RecomputeTier re-derives the customer's tier from the current points and
// lifetime spend and writes it back. Idempotent.
func (s *Service) RecomputeTier(ctx context.Context, customerID int64) (*models.LoyaltyResponse, error) {
	s.logger.Info("RecomputeTier: recomputing tier for customer=%d", customerID)

	loyalty, err := s.customerRepo.GetLoyalty(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("RecomputeTier: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("RecomputeTier: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: RecomputeTier - repository error: %v", ErrInternal, err)
	}

	tier := domain.TierFor(loyalty.Points, loyalty.TotalSpent)

	if err := s.customerRepo.UpdateTier(ctx, customerID, tier); err != nil {
		s.logger.Error("RecomputeTier: failed to update tier for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: RecomputeTier - failed to update tier: %v", ErrInternal, err)
	}

	s.logger.Info("RecomputeTier: customer=%d is now %s", customerID, tier)

	loyalty.Tier = tier
	return models.FromDomainLoyalty(loyalty), nil
}

// AddSpend bumps the customer's lifetime spend and stamps the last service
// date. It does NOT recompute the tier; callers invoke RecomputeTier
// separately when they want the tier to follow.
func (s *Service) AddSpend(ctx context.Context, customerID int64, req *models.AddSpendRequest) error {
	s.logger.Info("AddSpend: customer=%d, amount=%.2f", customerID, req.Amount)

	if req.Amount <= 0 {
		s.logger.Warn("AddSpend: non-positive amount %.2f for customer=%d", req.Amount, customerID)
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if err := s.customerRepo.AddSpend(ctx, customerID, req.Amount); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("AddSpend: customer id=%d not found", customerID)
			return ErrCustomerNotFound
		}
		s.logger.Error("AddSpend: repository error for customer=%d: %v", customerID, err)
		return fmt.Errorf("%w: AddSpend - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSpend: recorded %.2f for customer=%d", req.Amount, customerID)
	return nil
}

// GetTransactions lists the customer's ledger, newest first.
func (s *Service) GetTransactions(ctx context.Context, customerID int64) (*models.TransactionListResponse, error) {
	s.logger.Info("GetTransactions: fetching ledger for customer=%d", customerID)

	if _, err := s.customerRepo.GetLoyalty(ctx, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetTransactions: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetTransactions: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetTransactions - repository error: %v", ErrInternal, err)
	}

	txs, err := s.customerRepo.ListTransactions(ctx, customerID)
	if err != nil {
		s.logger.Error("GetTransactions: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetTransactions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTransactions: fetched %d transactions for customer=%d", len(txs), customerID)
	return models.FromDomainTransactionList(txs), nil
}

// RecomputeAllTiers applies the tier function to every customer. Used by the
// nightly job; per-customer failures are logged and skipped so one bad row
// does not stall the run.
func (s *Service) RecomputeAllTiers(ctx context.Context) error {
	s.logger.Info("RecomputeAllTiers: starting full recompute")

	ids, err := s.customerRepo.ListCustomerIDs(ctx)
	if err != nil {
		s.logger.Error("RecomputeAllTiers: failed to list customers: %v", err)
		return fmt.Errorf("%w: RecomputeAllTiers - failed to list customers: %v", ErrInternal, err)
	}

	var failed int
	for _, id := range ids {
		if _, err := s.RecomputeTier(ctx, id); err != nil {
			s.logger.Error("RecomputeAllTiers: customer=%d failed: %v", id, err)
			failed++
		}
	}

	s.logger.Info("RecomputeAllTiers: recomputed %d customers, %d failed", len(ids)-failed, failed)
	return nil
}
