package reconciliation

import (
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
)

// Matching tolerances. Constants, not configuration: the reconciler must
// behave identically across deployments.
const (
	AmountToleranceCents int64 = 100
	DateToleranceDays          = 7
)

// MatchCandidates returns the orders whose total is within 100 cents of the
// entry amount and whose creation date is within 7 days of the entry date.
// Only budget-relevant orders (pending, ordered, delivered) are considered.
func MatchCandidates(amountCents int64, entryDate time.Time, orders []order.Order) []order.Order {
	var candidates []order.Order
	for _, o := range orders {
		if !o.Status.CountsAgainstBudget() {
			continue
		}
		if absInt64(o.TotalCents-amountCents) > AmountToleranceCents {
			continue
		}
		if absInt(daysBetween(o.CreatedAt, entryDate)) > DateToleranceDays {
			continue
		}
		candidates = append(candidates, o)
	}
	return candidates
}

// daysBetween counts whole calendar days between two instants, ignoring the
// time-of-day component
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ad.Sub(bd).Hours() / 24)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
