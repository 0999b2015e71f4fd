package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const dateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanCreated is raised when a loan and its schedule are generated.
type LoanCreated struct {
	events.BaseEvent
	ClientID    string          `json:"client_id"`
	Principal   decimal.Decimal `json:"principal"`
	AnnualRate  decimal.Decimal `json:"annual_rate"`
	Term        int             `json:"term"`
	Frequency   string          `json:"frequency"`
	LoanType    string          `json:"loan_type"`
	AmountToPay decimal.Decimal `json:"amount_to_pay"`
	StartDate   string          `json:"start_date"`
}

func NewLoanCreated(
	loanID, clientID string,
	principal, annualRate decimal.Decimal,
	term int,
	frequency, loanType string,
	amountToPay decimal.Decimal,
	startDate time.Time,
) LoanCreated {
	return LoanCreated{
		BaseEvent:   events.NewBaseEvent("lending.loan.created", loanID, "Loan"),
		ClientID:    clientID,
		Principal:   principal,
		AnnualRate:  annualRate,
		Term:        term,
		Frequency:   frequency,
		LoanType:    loanType,
		AmountToPay: amountToPay,
		StartDate:   startDate.Format(dateLayout),
	}
}

// PaymentApplied is raised after a payment has been allocated across
// installments.
type PaymentApplied struct {
	events.BaseEvent
	ClientID      string          `json:"client_id"`
	AmountApplied decimal.Decimal `json:"amount_applied"`
	PaymentDate   string          `json:"payment_date"`
}

func NewPaymentApplied(loanID, clientID string, amountApplied decimal.Decimal, paymentDate time.Time) PaymentApplied {
	return PaymentApplied{
		BaseEvent:     events.NewBaseEvent("lending.loan.payment_applied", loanID, "Loan"),
		ClientID:      clientID,
		AmountApplied: amountApplied,
		PaymentDate:   paymentDate.Format(dateLayout),
	}
}

// LateFeesAccrued is raised when an accrual pass assessed at least one fee.
type LateFeesAccrued struct {
	events.BaseEvent
	ClientID      string          `json:"client_id"`
	TotalAssessed decimal.Decimal `json:"total_assessed"`
	AsOf          string          `json:"as_of"`
}

func NewLateFeesAccrued(loanID, clientID string, totalAssessed decimal.Decimal, asOf time.Time) LateFeesAccrued {
	return LateFeesAccrued{
		BaseEvent:     events.NewBaseEvent("lending.loan.late_fees_accrued", loanID, "Loan"),
		ClientID:      clientID,
		TotalAssessed: totalAssessed,
		AsOf:          asOf.Format(dateLayout),
	}
}

// LoanPaidOff is raised when the last installment reaches PAID.
type LoanPaidOff struct {
	events.BaseEvent
	ClientID string `json:"client_id"`
	PaidAt   string `json:"paid_at"`
}

func NewLoanPaidOff(loanID, clientID string, paidAt time.Time) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent: events.NewBaseEvent("lending.loan.paid_off", loanID, "Loan"),
		ClientID:  clientID,
		PaidAt:    paidAt.Format(dateLayout),
	}
}

// ---------------------------------------------------------------------------
// Treasury events
// ---------------------------------------------------------------------------

// CapitalAdjusted is raised when the lending capital ceiling changes.
type CapitalAdjusted struct {
	events.BaseEvent
	PreviousCapital decimal.Decimal `json:"previous_capital"`
	NewCapital      decimal.Decimal `json:"new_capital"`
	CapitalLent     decimal.Decimal `json:"capital_lent"`
}

func NewCapitalAdjusted(previousCapital, newCapital, capitalLent decimal.Decimal) CapitalAdjusted {
	return CapitalAdjusted{
		BaseEvent:       events.NewBaseEvent("lending.treasury.capital_adjusted", "treasury", "Treasury"),
		PreviousCapital: previousCapital,
		NewCapital:      newCapital,
		CapitalLent:     capitalLent,
	}
}
