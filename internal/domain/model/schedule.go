package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// GenerateSchedule builds the full installment schedule for a new loan.
//
// Parameters:
//   - principal:  the loan amount, must be positive
//   - annualRate: annual interest rate as a percentage (10 = 10%)
//   - term:       number of installments
//   - frequency:  how often installments fall due
//   - loanType:   SIMPLE or AMORTIZED interest
//   - startDate:  the loan start date; installment 1 is due one period later
//
// Amounts are kept at full precision. Rounding to two decimals happens only
// at the presentation boundary.
func GenerateSchedule(
	principal, annualRate decimal.Decimal,
	term int,
	frequency valueobject.PaymentFrequency,
	loanType valueobject.LoanType,
	startDate time.Time,
) ([]Installment, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, valueobject.NewValidationError("principal", "must be positive")
	}
	if annualRate.IsNegative() || annualRate.GreaterThan(hundred) {
		return nil, valueobject.NewValidationError("annualRate", "must be between 0 and 100")
	}
	if term <= 0 {
		return nil, valueobject.NewValidationError("term", "must be a positive integer")
	}
	if frequency.IsZero() {
		return nil, valueobject.NewValidationError("frequency", "unrecognized payment frequency")
	}
	if loanType.IsZero() {
		return nil, valueobject.NewValidationError("loanType", "unrecognized loan type")
	}

	switch loanType {
	case valueobject.LoanTypeAmortized:
		return amortizedSchedule(principal, annualRate, term, frequency, startDate), nil
	default:
		return simpleSchedule(principal, annualRate, term, frequency, startDate), nil
	}
}

// amortizedSchedule builds a level payment schedule.
//
//	ratePerPeriod = annualRate / 100 / periodsPerYear
//	payment       = P * r * (1+r)^n / ((1+r)^n - 1)
//
// The last installment absorbs the remaining balance so the principal column
// sums back to the loan amount exactly.
func amortizedSchedule(
	principal, annualRate decimal.Decimal,
	term int,
	frequency valueobject.PaymentFrequency,
	startDate time.Time,
) []Installment {
	periodsPerYear := frequency.PeriodsPerYear()
	ratePerPeriod := annualRate.Div(hundred).Div(decimal.NewFromInt(int64(periodsPerYear)))

	var payment decimal.Decimal
	if ratePerPeriod.IsZero() {
		// Zero interest: even principal split.
		payment = principal.Div(decimal.NewFromInt(int64(term)))
	} else {
		// The power term uses float64, then monetary arithmetic stays decimal.
		r := ratePerPeriod.InexactFloat64()
		factor := math.Pow(1+r, float64(term))
		payment = decimal.NewFromFloat(principal.InexactFloat64() * r * factor / (factor - 1))
	}

	schedule := make([]Installment, 0, term)
	remaining := principal

	for number := 1; number <= term; number++ {
		interest := remaining.Mul(ratePerPeriod)
		principalPart := payment.Sub(interest)

		if number == term {
			principalPart = remaining
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		schedule = append(schedule, Installment{
			Number:     number,
			DueDate:    dueDate(startDate, frequency, number),
			Principal:  principalPart,
			Interest:   interest,
			PaidAmount: decimal.Zero,
			LateFee:    decimal.Zero,
			Status:     valueobject.InstallmentStatusPending,
		})
	}

	return schedule
}

// simpleSchedule computes interest once on the original principal and splits
// both principal and interest evenly across installments.
//
//	totalInterest = P * (annualRate/100/12) * (term*periodsPerYear/12)
func simpleSchedule(
	principal, annualRate decimal.Decimal,
	term int,
	frequency valueobject.PaymentFrequency,
	startDate time.Time,
) []Installment {
	twelve := decimal.NewFromInt(12)
	termDec := decimal.NewFromInt(int64(term))
	periods := decimal.NewFromInt(int64(frequency.PeriodsPerYear()))

	monthlyRate := annualRate.Div(hundred).Div(twelve)
	totalInterest := principal.Mul(monthlyRate).Mul(termDec.Mul(periods).Div(twelve))

	principalPart := principal.Div(termDec)
	interestPart := totalInterest.Div(termDec)

	schedule := make([]Installment, 0, term)
	for number := 1; number <= term; number++ {
		schedule = append(schedule, Installment{
			Number:     number,
			DueDate:    dueDate(startDate, frequency, number),
			Principal:  principalPart,
			Interest:   interestPart,
			PaidAmount: decimal.Zero,
			LateFee:    decimal.Zero,
			Status:     valueobject.InstallmentStatusPending,
		})
	}

	return schedule
}

// dueDate steps the start date forward by the given number of periods. Daily
// loans intentionally put installment 1 on the start date itself; callers
// depend on that behavior.
func dueDate(startDate time.Time, frequency valueobject.PaymentFrequency, number int) time.Time {
	switch frequency {
	case valueobject.FrequencyMonthly:
		return startDate.AddDate(0, number, 0)
	case valueobject.FrequencyBiweekly:
		return startDate.AddDate(0, 0, 14*number)
	case valueobject.FrequencyWeekly:
		return startDate.AddDate(0, 0, 7*number)
	case valueobject.FrequencyDaily:
		return startDate.AddDate(0, 0, number-1)
	default:
		return startDate
	}
}
