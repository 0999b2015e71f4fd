package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLoanRequest carries the data needed to create a loan and generate
// its installment schedule.
type CreateLoanRequest struct {
	ClientID   string          `json:"client_id"`
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate decimal.Decimal `json:"annual_rate"`
	Term       int             `json:"term"`
	Frequency  string          `json:"frequency"`
	LoanType   string          `json:"loan_type"`
	StartDate  time.Time       `json:"start_date"`
}

// MakePaymentRequest carries the data for a loan payment.
type MakePaymentRequest struct {
	LoanID        string          `json:"loan_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
}

// AccrueLateFeesRequest triggers a late fee pass over one loan.
type AccrueLateFeesRequest struct {
	LoanID string    `json:"loan_id"`
	AsOf   time.Time `json:"as_of"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// ListLoansRequest selects loans to retrieve. When ClientID is set only that
// client's loans are returned.
type ListLoansRequest struct {
	ClientID string `json:"client_id,omitempty"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// AdjustCapitalRequest sets a new lending capital ceiling.
type AdjustCapitalRequest struct {
	TotalCapital decimal.Decimal `json:"total_capital"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse is the external representation of one installment.
type InstallmentResponse struct {
	Number      int             `json:"number"`
	DueDate     time.Time       `json:"due_date"`
	Principal   decimal.Decimal `json:"principal"`
	Interest    decimal.Decimal `json:"interest"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	LateFee     decimal.Decimal `json:"late_fee"`
	Status      string          `json:"status"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                 string                `json:"id"`
	ClientID           string                `json:"client_id"`
	Principal          decimal.Decimal       `json:"principal"`
	AnnualRate         decimal.Decimal       `json:"annual_rate"`
	Term               int                   `json:"term"`
	Frequency          string                `json:"frequency"`
	LoanType           string                `json:"loan_type"`
	StartDate          time.Time             `json:"start_date"`
	Status             string                `json:"status"`
	AmountToPay        decimal.Decimal       `json:"amount_to_pay"`
	AmountApplied      decimal.Decimal       `json:"amount_applied"`
	OverdueAmount      decimal.Decimal       `json:"overdue_amount"`
	AccumulatedLateFee decimal.Decimal       `json:"accumulated_late_fee"`
	TotalPending       decimal.Decimal       `json:"total_pending"`
	Installments       []InstallmentResponse `json:"installments,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// PaymentResponse is the external representation of a payment result.
type PaymentResponse struct {
	PaymentID       string          `json:"payment_id"`
	LoanID          string          `json:"loan_id"`
	Amount          decimal.Decimal `json:"amount"`
	AppliedAmount   decimal.Decimal `json:"applied_amount"`
	UnappliedAmount decimal.Decimal `json:"unapplied_amount"`
	LoanStatus      string          `json:"loan_status"`
	TotalPending    decimal.Decimal `json:"total_pending"`
}

// AccrualResponse is the external representation of a late fee pass.
type AccrualResponse struct {
	LoanID              string          `json:"loan_id"`
	InstallmentsFlagged int             `json:"installments_flagged"`
	TotalAssessed       decimal.Decimal `json:"total_assessed"`
	AccumulatedLateFee  decimal.Decimal `json:"accumulated_late_fee"`
	OverdueAmount       decimal.Decimal `json:"overdue_amount"`
	TotalPending        decimal.Decimal `json:"total_pending"`
}

// CapitalResponse is the external representation of the treasury.
type CapitalResponse struct {
	TotalCapital     decimal.Decimal `json:"total_capital"`
	CapitalLent      decimal.Decimal `json:"capital_lent"`
	AvailableCapital decimal.Decimal `json:"available_capital"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
