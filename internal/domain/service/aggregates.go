package service

import (
	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/model"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

// AggregateCalculator derives loan-level totals from installment state. It
// is the single source of truth for a loan's summary fields and must run
// after every mutation.
type AggregateCalculator struct{}

// NewAggregateCalculator creates an aggregate calculator.
func NewAggregateCalculator() *AggregateCalculator {
	return &AggregateCalculator{}
}

// Compute derives the totals:
//
//	amountApplied      = sum of paidAmount
//	accumulatedLateFee = sum of lateFee
//	overdueAmount      = sum of (principal+interest-paidAmount) over OVERDUE installments
//	totalPending       = amountToPay - amountApplied + accumulatedLateFee
//
// Deterministic over the installment set: running it twice on unchanged
// input yields identical numbers.
func (c *AggregateCalculator) Compute(amountToPay decimal.Decimal, installments []model.Installment) model.LoanAggregates {
	amountApplied := decimal.Zero
	accumulatedLateFee := decimal.Zero
	overdueAmount := decimal.Zero

	for _, inst := range installments {
		amountApplied = amountApplied.Add(inst.PaidAmount)
		accumulatedLateFee = accumulatedLateFee.Add(inst.LateFee)
		if inst.Status.Equal(valueobject.InstallmentStatusOverdue) {
			overdueAmount = overdueAmount.Add(inst.Total().Sub(inst.PaidAmount))
		}
	}

	return model.LoanAggregates{
		AmountApplied:      amountApplied,
		AccumulatedLateFee: accumulatedLateFee,
		OverdueAmount:      overdueAmount,
		TotalPending:       amountToPay.Sub(amountApplied).Add(accumulatedLateFee),
	}
}
