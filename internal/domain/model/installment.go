package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

// Installment is one period of a loan's repayment schedule. Principal and
// interest are fixed at schedule generation; only paidAmount, lateFee,
// status and paymentDate change afterwards.
type Installment struct {
	Number      int
	DueDate     time.Time
	Principal   decimal.Decimal
	Interest    decimal.Decimal
	PaidAmount  decimal.Decimal
	LateFee     decimal.Decimal
	Status      valueobject.InstallmentStatus
	PaymentDate *time.Time
}

// Total returns the scheduled amount of the installment without fees.
func (i Installment) Total() decimal.Decimal {
	return i.Principal.Add(i.Interest)
}

// PrincipalPaidSoFar reconstructs how much of paidAmount went to principal.
// Interest is always settled before principal, so anything paid beyond the
// interest amount is principal.
func (i Installment) PrincipalPaidSoFar() decimal.Decimal {
	paid := i.PaidAmount.Sub(i.Interest)
	if paid.IsNegative() {
		return decimal.Zero
	}
	return paid
}

// InterestPaidSoFar reconstructs how much of paidAmount went to interest.
func (i Installment) InterestPaidSoFar() decimal.Decimal {
	return i.PaidAmount.Sub(i.PrincipalPaidSoFar())
}

// OutstandingInterest returns the interest still owed on the installment.
func (i Installment) OutstandingInterest() decimal.Decimal {
	return i.Interest.Sub(i.InterestPaidSoFar())
}

// OutstandingPrincipal returns the principal still owed on the installment.
func (i Installment) OutstandingPrincipal() decimal.Decimal {
	return i.Principal.Sub(i.PrincipalPaidSoFar())
}

// OutstandingFee returns the late fee still owed. The fee takes the top spot
// in the allocation order, so once any payment lands on the installment the
// fee has already been collected.
func (i Installment) OutstandingFee() decimal.Decimal {
	if i.PaidAmount.IsZero() {
		return i.LateFee
	}
	return decimal.Zero
}

// PaymentDelta is the proposed change to one installment produced by the
// payment allocator. Nothing is persisted until the caller commits it.
type PaymentDelta struct {
	InstallmentNumber int
	FeeApplied        decimal.Decimal
	InterestApplied   decimal.Decimal
	PrincipalApplied  decimal.Decimal
	NewPaidAmount     decimal.Decimal
	NewStatus         valueobject.InstallmentStatus
}

// Applied returns the full amount the delta consumes from the payment.
func (d PaymentDelta) Applied() decimal.Decimal {
	return d.FeeApplied.Add(d.InterestApplied).Add(d.PrincipalApplied)
}

// AccrualDelta is the proposed change to one installment produced by the
// late fee engine.
type AccrualDelta struct {
	InstallmentNumber int
	FeeAssessed       decimal.Decimal
	NewLateFee        decimal.Decimal
	NewStatus         valueobject.InstallmentStatus
}

// LoanAggregates holds the loan-level totals derived from installment state.
// These are the only values ever written to a loan's summary fields.
type LoanAggregates struct {
	AmountApplied      decimal.Decimal
	AccumulatedLateFee decimal.Decimal
	OverdueAmount      decimal.Decimal
	TotalPending       decimal.Decimal
}
