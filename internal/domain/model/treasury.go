package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/event"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

// TreasuryID is the identifier of the single treasury row. The business
// tracks one pool of lending capital.
const TreasuryID = 1

// Treasury tracks the capital available for lending against the capital
// already lent out. Immutable; mutations return a new copy.
type Treasury struct {
	id           int
	totalCapital decimal.Decimal
	capitalLent  decimal.Decimal
	version      int
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// NewTreasury creates the treasury with the given capital and nothing lent.
func NewTreasury(totalCapital decimal.Decimal, now time.Time) (Treasury, error) {
	if totalCapital.IsNegative() {
		return Treasury{}, valueobject.NewValidationError("totalCapital", "must not be negative")
	}
	return Treasury{
		id:           TreasuryID,
		totalCapital: totalCapital,
		capitalLent:  decimal.Zero,
		version:      1,
		updatedAt:    now,
	}, nil
}

// ReconstructTreasury rebuilds the treasury from persistence.
func ReconstructTreasury(totalCapital, capitalLent decimal.Decimal, version int, updatedAt time.Time) Treasury {
	return Treasury{
		id:           TreasuryID,
		totalCapital: totalCapital,
		capitalLent:  capitalLent,
		version:      version,
		updatedAt:    updatedAt,
	}
}

// Lend reserves capital for a new loan. Fails when the amount would push
// capital lent past the total capital ceiling.
func (t Treasury) Lend(amount decimal.Decimal, now time.Time) (Treasury, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return t, valueobject.NewValidationError("amount", "must be positive")
	}
	available := t.totalCapital.Sub(t.capitalLent)
	if amount.GreaterThan(available) {
		return t, valueobject.NewDomainError(
			"insufficient lending capital: requested %s, available %s", amount, available)
	}
	next := t
	next.capitalLent = t.capitalLent.Add(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(t.domainEvents)
	return next, nil
}

// Repay releases capital when principal comes back. The lent figure never
// drops below zero.
func (t Treasury) Repay(amount decimal.Decimal, now time.Time) (Treasury, error) {
	if amount.IsNegative() {
		return t, valueobject.NewValidationError("amount", "must not be negative")
	}
	next := t
	next.capitalLent = t.capitalLent.Sub(amount)
	if next.capitalLent.IsNegative() {
		next.capitalLent = decimal.Zero
	}
	next.updatedAt = now
	next.domainEvents = copyEvents(t.domainEvents)
	return next, nil
}

// SetTotalCapital is the one explicit operation that changes the capital
// ceiling. The new ceiling may not fall below what is already lent out.
func (t Treasury) SetTotalCapital(totalCapital decimal.Decimal, now time.Time) (Treasury, error) {
	if totalCapital.IsNegative() {
		return t, valueobject.NewValidationError("totalCapital", "must not be negative")
	}
	if totalCapital.LessThan(t.capitalLent) {
		return t, valueobject.NewDomainError(
			"total capital %s cannot fall below capital lent %s", totalCapital, t.capitalLent)
	}
	next := t
	next.totalCapital = totalCapital
	next.updatedAt = now
	next.domainEvents = copyEvents(t.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCapitalAdjusted(t.totalCapital, totalCapital, t.capitalLent))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (t Treasury) ID() int                           { return t.id }
func (t Treasury) TotalCapital() decimal.Decimal     { return t.totalCapital }
func (t Treasury) CapitalLent() decimal.Decimal      { return t.capitalLent }
func (t Treasury) AvailableCapital() decimal.Decimal { return t.totalCapital.Sub(t.capitalLent) }
func (t Treasury) Version() int                      { return t.version }
func (t Treasury) UpdatedAt() time.Time              { return t.updatedAt }
func (t Treasury) DomainEvents() []event.DomainEvent { return t.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (t Treasury) ClearEvents() Treasury {
	next := t
	next.domainEvents = nil
	return next
}
