package domain

import "time"

// Tier is the loyalty classification derived from points and spend.
type Tier string

const (
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// TierFor computes the loyalty tier from accumulated points and lifetime
// spend. Pure function; recomputing with unchanged inputs is idempotent.
func TierFor(points int, totalSpent float64) Tier {
	switch {
	case points >= GoldPointsThreshold || totalSpent >= GoldSpendThreshold:
		return TierGold
	case points >= SilverPointsThreshold || totalSpent >= SilverSpendThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// CustomerLoyalty is the loyalty state of one customer.
type CustomerLoyalty struct {
	CustomerID      int64
	Name            string
	Email           string
	Points          int
	Tier            Tier
	TotalSpent      float64
	LastServiceDate *time.Time
	UpdatedAt       time.Time
}

// Loyalty transaction types.
const (
	TransactionEarn       = "earn"
	TransactionRedeem     = "redeem"
	TransactionAdjustment = "adjustment"
)

// LoyaltyTransaction is one immutable row of the append-only points ledger.
// Points is a signed delta; OrderID/BookingID optionally link the entry to
// the event that produced it.
type LoyaltyTransaction struct {
	ID          int64
	CustomerID  int64
	Type        string
	Points      int
	Description *string
	OrderID     *int64
	BookingID   *int64
	CreatedAt   time.Time
}
