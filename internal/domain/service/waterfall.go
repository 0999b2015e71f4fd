package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/model"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

// AllocationResult is the outcome of distributing one payment across a
// loan's installments. UnappliedAmount is whatever is left after every
// eligible installment is satisfied; the caller decides what to do with it.
type AllocationResult struct {
	Deltas          []model.PaymentDelta
	UnappliedAmount decimal.Decimal
}

// TotalApplied sums everything the allocation consumed from the payment.
func (r AllocationResult) TotalApplied() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Deltas {
		total = total.Add(d.Applied())
	}
	return total
}

// PaymentAllocator distributes a payment across installments using a fixed
// waterfall. It is a pure calculation; nothing is persisted here.
type PaymentAllocator struct{}

// NewPaymentAllocator creates a payment allocator.
func NewPaymentAllocator() *PaymentAllocator {
	return &PaymentAllocator{}
}

// Allocate walks the installments in order and applies the amount to each
// eligible one in a fixed priority: outstanding late fee, then outstanding
// interest, then outstanding principal.
//
// Installments already PAID are skipped. Allocation stops when the amount
// runs out or no eligible installments remain. The result always conserves
// money: applied totals plus the unapplied remainder equal the input amount.
func (a *PaymentAllocator) Allocate(installments []model.Installment, amount decimal.Decimal) (AllocationResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return AllocationResult{}, valueobject.NewValidationError("amount", "must be positive")
	}

	eligible := 0
	for _, inst := range installments {
		if !inst.Status.Equal(valueobject.InstallmentStatusPaid) {
			eligible++
		}
	}
	if eligible == 0 {
		return AllocationResult{}, valueobject.NewDomainError("no outstanding installments to pay")
	}

	remaining := amount
	deltas := make([]model.PaymentDelta, 0, eligible)

	for _, inst := range installments {
		if remaining.IsZero() {
			break
		}
		if inst.Status.Equal(valueobject.InstallmentStatusPaid) {
			continue
		}

		fee := decimal.Min(remaining, inst.OutstandingFee())
		remaining = remaining.Sub(fee)

		interest := decimal.Min(remaining, inst.OutstandingInterest())
		remaining = remaining.Sub(interest)

		principal := decimal.Min(remaining, inst.OutstandingPrincipal())
		remaining = remaining.Sub(principal)

		applied := fee.Add(interest).Add(principal)
		if applied.IsZero() {
			continue
		}

		newPaid := inst.PaidAmount.Add(interest).Add(principal)
		newStatus := inst.Status
		switch {
		case newPaid.GreaterThanOrEqual(inst.Total()):
			newStatus = valueobject.InstallmentStatusPaid
		case newPaid.IsPositive():
			newStatus = valueobject.InstallmentStatusPartial
		}

		deltas = append(deltas, model.PaymentDelta{
			InstallmentNumber: inst.Number,
			FeeApplied:        fee,
			InterestApplied:   interest,
			PrincipalApplied:  principal,
			NewPaidAmount:     newPaid,
			NewStatus:         newStatus,
		})
	}

	return AllocationResult{Deltas: deltas, UnappliedAmount: remaining}, nil
}

// PrincipalApplied sums the principal portion of an allocation, which is what
// flows back to the treasury as repaid capital.
func (r AllocationResult) PrincipalApplied() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Deltas {
		total = total.Add(d.PrincipalApplied)
	}
	return total
}

// truncateToDate drops the time-of-day component. Dates cross the engine
// boundary as calendar dates only.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
