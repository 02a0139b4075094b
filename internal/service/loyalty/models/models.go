package models

import (
	"time"

	"github.com/detailhub/booking-service/internal/domain"
)

// Request models

// AppendTransactionRequest records a point delta against a customer.
type AppendTransactionRequest struct {
	Type        string  `json:"type"` // earn/redeem/adjustment
	Points      int     `json:"points"`
	Description *string `json:"description,omitempty"`
	OrderID     *int64  `json:"orderId,omitempty"`
	BookingID   *int64  `json:"bookingId,omitempty"`
}

// AddSpendRequest bumps a customer's lifetime spend.
type AddSpendRequest struct {
	Amount float64 `json:"amount"`
}

// Response models

// LoyaltyResponse carries a customer's loyalty state.
type LoyaltyResponse struct {
	CustomerID      int64     `json:"customerId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Points          int       `json:"points"`
	Tier            string    `json:"tier"`
	TotalSpent      float64   `json:"totalSpent"`
	LastServiceDate *string   `json:"lastServiceDate,omitempty"` // "2025-10-15"
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TransactionResponse carries one ledger row.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	Type        string    `json:"type"`
	Points      int       `json:"points"`
	Description *string   `json:"description,omitempty"`
	OrderID     *int64    `json:"orderId,omitempty"`
	BookingID   *int64    `json:"bookingId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TransactionListResponse wraps the ledger listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// FromDomainLoyalty converts the domain model into a DTO.
func FromDomainLoyalty(c *domain.CustomerLoyalty) *LoyaltyResponse {
	if c == nil {
		return nil
	}

	resp := &LoyaltyResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		Points:     c.Points,
		Tier:       string(c.Tier),
		TotalSpent: c.TotalSpent,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.LastServiceDate != nil {
		dateStr := c.LastServiceDate.Format(domain.DateFormat)
		resp.LastServiceDate = &dateStr
	}

	return resp
}

// FromDomainTransaction converts one ledger row into a DTO.
func FromDomainTransaction(t *domain.LoyaltyTransaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	return &TransactionResponse{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		Type:        t.Type,
		Points:      t.Points,
		Description: t.Description,
		OrderID:     t.OrderID,
		BookingID:   t.BookingID,
		CreatedAt:   t.CreatedAt,
	}
}

// FromDomainTransactionList converts the ledger listing into DTOs.
func FromDomainTransactionList(txs []*domain.LoyaltyTransaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(txs)),
	}

	for _, tx := range txs {
		if txResp := FromDomainTransaction(tx); txResp != nil {
			resp.Transactions = append(resp.Transactions, *txResp)
		}
	}

	return resp
}
