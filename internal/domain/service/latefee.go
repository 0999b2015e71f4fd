package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/model"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

// DefaultLateFeeRate is the one-time penalty applied to a newly overdue
// installment, as a fraction of its principal plus interest.
var DefaultLateFeeRate = decimal.NewFromFloat(0.04)

// LateFeeAccrual assesses one-time penalties on newly overdue installments.
// Pure calculation; the caller commits the returned deltas.
type LateFeeAccrual struct {
	Rate decimal.Decimal
}

// NewLateFeeAccrual creates the engine with the default penalty rate.
func NewLateFeeAccrual() *LateFeeAccrual {
	return &LateFeeAccrual{Rate: DefaultLateFeeRate}
}

// Accrue scans the installments as of the given date and flags newly overdue
// ones. An installment qualifies when its due date has passed, nothing has
// been paid on it, and it is not already OVERDUE or PARTIAL.
//
// The OVERDUE status itself is the guard: an installment flagged by an
// earlier run is never charged again, no matter how often accrual runs.
func (e *LateFeeAccrual) Accrue(installments []model.Installment, asOf time.Time) []model.AccrualDelta {
	today := truncateToDate(asOf)

	var deltas []model.AccrualDelta
	for _, inst := range installments {
		if !truncateToDate(inst.DueDate).Before(today) {
			continue
		}
		if !inst.PaidAmount.IsZero() {
			continue
		}
		if inst.Status.Equal(valueobject.InstallmentStatusOverdue) ||
			inst.Status.Equal(valueobject.InstallmentStatusPartial) {
			continue
		}

		fee := e.Rate.Mul(inst.Total())
		deltas = append(deltas, model.AccrualDelta{
			InstallmentNumber: inst.Number,
			FeeAssessed:       fee,
			NewLateFee:        inst.LateFee.Add(fee),
			NewStatus:         valueobject.InstallmentStatusOverdue,
		})
	}

	return deltas
}
