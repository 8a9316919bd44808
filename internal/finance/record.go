package finance

import (
	"math"
	"time"
)

// DeliveryAmounts holds the fields derived from a submitted delivery amount:
// both sides of the gross/net pair and the month/year reporting bucket taken
// from the delivery date.
type DeliveryAmounts struct {
	Gross float64
	Net   float64
	Month int
	Year  int
}

// Caller is the identity a write operation runs as, threaded in explicitly by
// the handler rather than read from ambient state.
type Caller struct {
	ID    uint
	Admin bool
}

// DeriveDelivery validates a submitted amount and computes the derived
// delivery fields. When isGross is true the amount is taken as gross and the
// net side is computed, otherwise the reverse. The month/year bucket comes
// from the calendar date alone.
func DeriveDelivery(amount float64, isGross bool, date time.Time) (DeliveryAmounts, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return DeliveryAmounts{}, validationError("amount must be a valid number")
	}

	if amount <= 0 {
		return DeliveryAmounts{}, validationError("amount must be greater than zero")
	}

	if date.IsZero() {
		return DeliveryAmounts{}, validationError("delivery date is required")
	}

	derived := DeliveryAmounts{
		Month: int(date.Month()),
		Year:  date.Year(),
	}

	if isGross {
		derived.Gross = amount
		derived.Net = ToNet(amount)
	} else {
		derived.Net = amount
		derived.Gross = ToGross(amount)
	}

	return derived, nil
}

// CanModify reports whether the caller may update or delete a delivery owned
// by ownerID. The owner is the row's user as it was before the edit, so
// reassigning a delivery to someone else does not transfer write access.
func CanModify(caller Caller, ownerID uint) bool {
	return caller.Admin || caller.ID == ownerID
}

// ValidateTarget checks a monthly target submission.
func ValidateTarget(month, year int, amount float64) error {
	if month < 1 || month > 12 {
		return validationError("month must be between 1 and 12")
	}

	if year < 1 {
		return validationError("year must be a positive number")
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return validationError("target amount must be zero or greater")
	}

	return nil
}
