package booking

import "roombook/internal/domain"

// DefaultCommissionBP is the platform commission in basis points (10%).
const DefaultCommissionBP = 1000

const minutesPerHour = 60

// Quote is the derived monetary result of a booking interval. Amounts are
// integer minor units (cents) end to end; rounding happens here, once, and
// never accumulates.
type Quote struct {
	TotalCents      int64
	CommissionCents int64
}

// ComputeAmount derives total and commission from a room's hourly rate and
// the requested duration. Duration may be fractional (90 minutes = 1.5h).
// Rounding is half-up to the cent.
func ComputeAmount(hourlyRateCents int64, iv domain.Interval, commissionBP int64) Quote {
	minutes := int64(iv.Minutes())
	total := (hourlyRateCents*minutes + minutesPerHour/2) / minutesPerHour
	commission := (total*commissionBP + 5000) / 10000
	return Quote{TotalCents: total, CommissionCents: commission}
}
