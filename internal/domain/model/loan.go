package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/event"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy. A loan
// exclusively owns its installments; they live and die with it.
type Loan struct {
	id                 string
	clientID           string
	principal          decimal.Decimal
	annualRate         decimal.Decimal
	term               int
	frequency          valueobject.PaymentFrequency
	loanType           valueobject.LoanType
	startDate          time.Time
	status             valueobject.LoanStatus
	installments       []Installment
	amountToPay        decimal.Decimal
	amountApplied      decimal.Decimal
	overdueAmount      decimal.Decimal
	accumulatedLateFee decimal.Decimal
	totalPending       decimal.Decimal
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan creates a loan and generates its installment schedule. The loan
// starts in ACTIVE status with every installment PENDING.
func NewLoan(
	clientID string,
	principal, annualRate decimal.Decimal,
	term int,
	frequency valueobject.PaymentFrequency,
	loanType valueobject.LoanType,
	startDate time.Time,
	now time.Time,
) (Loan, error) {
	if clientID == "" {
		return Loan{}, valueobject.NewValidationError("clientID", "is required")
	}

	schedule, err := GenerateSchedule(principal, annualRate, term, frequency, loanType, startDate)
	if err != nil {
		return Loan{}, err
	}

	amountToPay := decimal.Zero
	for _, inst := range schedule {
		amountToPay = amountToPay.Add(inst.Total())
	}

	id := uuid.New().String()
	loan := Loan{
		id:                 id,
		clientID:           clientID,
		principal:          principal,
		annualRate:         annualRate,
		term:               term,
		frequency:          frequency,
		loanType:           loanType,
		startDate:          startDate,
		status:             valueobject.LoanStatusActive,
		installments:       schedule,
		amountToPay:        amountToPay,
		amountApplied:      decimal.Zero,
		overdueAmount:      decimal.Zero,
		accumulatedLateFee: decimal.Zero,
		totalPending:       amountToPay,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanCreated(
		id, clientID, principal, annualRate, term,
		frequency.String(), loanType.String(), amountToPay, startDate,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, clientID string,
	principal, annualRate decimal.Decimal,
	term int,
	frequency valueobject.PaymentFrequency,
	loanType valueobject.LoanType,
	startDate time.Time,
	status valueobject.LoanStatus,
	installments []Installment,
	amountToPay, amountApplied, overdueAmount, accumulatedLateFee, totalPending decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                 id,
		clientID:           clientID,
		principal:          principal,
		annualRate:         annualRate,
		term:               term,
		frequency:          frequency,
		loanType:           loanType,
		startDate:          startDate,
		status:             status,
		installments:       installments,
		amountToPay:        amountToPay,
		amountApplied:      amountApplied,
		overdueAmount:      overdueAmount,
		accumulatedLateFee: accumulatedLateFee,
		totalPending:       totalPending,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// ApplyPaymentDeltas commits the allocator's proposed changes to the
// installments and emits PaymentApplied. When every installment ends up PAID
// the loan transitions to PAID_OFF.
func (l Loan) ApplyPaymentDeltas(deltas []PaymentDelta, paymentDate time.Time, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, valueobject.NewDomainError("payments can only be applied to active loans")
	}

	next := l
	next.installments = l.Installments()
	next.domainEvents = copyEvents(l.domainEvents)

	totalApplied := decimal.Zero
	for _, d := range deltas {
		idx := next.installmentIndex(d.InstallmentNumber)
		if idx < 0 {
			return l, valueobject.NewDomainError("unknown installment number %d", d.InstallmentNumber)
		}
		inst := next.installments[idx]
		inst.PaidAmount = d.NewPaidAmount
		inst.Status = d.NewStatus
		if d.Applied().IsPositive() {
			pd := paymentDate
			inst.PaymentDate = &pd
		}
		next.installments[idx] = inst
		totalApplied = totalApplied.Add(d.Applied())
	}

	next.updatedAt = now
	next.domainEvents = append(next.domainEvents, event.NewPaymentApplied(l.id, l.clientID, totalApplied, paymentDate))

	if next.allInstallmentsPaid() {
		next.status = valueobject.LoanStatusPaidOff
		next.domainEvents = append(next.domainEvents, event.NewLoanPaidOff(l.id, l.clientID, now))
	}

	return next, nil
}

// ApplyAccrualDeltas commits the late fee engine's proposed changes and emits
// LateFeesAccrued when at least one fee was assessed. Applying an empty delta
// set is a no-op copy.
func (l Loan) ApplyAccrualDeltas(deltas []AccrualDelta, asOf time.Time, now time.Time) (Loan, error) {
	next := l
	next.installments = l.Installments()
	next.domainEvents = copyEvents(l.domainEvents)

	totalAssessed := decimal.Zero
	for _, d := range deltas {
		idx := next.installmentIndex(d.InstallmentNumber)
		if idx < 0 {
			return l, valueobject.NewDomainError("unknown installment number %d", d.InstallmentNumber)
		}
		inst := next.installments[idx]
		inst.LateFee = d.NewLateFee
		inst.Status = d.NewStatus
		next.installments[idx] = inst
		totalAssessed = totalAssessed.Add(d.FeeAssessed)
	}

	if totalAssessed.IsPositive() {
		next.updatedAt = now
		next.domainEvents = append(next.domainEvents, event.NewLateFeesAccrued(l.id, l.clientID, totalAssessed, asOf))
	}

	return next, nil
}

// WithAggregates replaces the loan's summary fields with freshly computed
// totals. This is the only way those fields are ever written.
func (l Loan) WithAggregates(agg LoanAggregates, now time.Time) Loan {
	next := l
	next.amountApplied = agg.AmountApplied
	next.accumulatedLateFee = agg.AccumulatedLateFee
	next.overdueAmount = agg.OverdueAmount
	next.totalPending = agg.TotalPending
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next
}

// Cancel transitions ACTIVE -> CANCELED.
func (l Loan) Cancel(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusCanceled
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

func (l Loan) allInstallmentsPaid() bool {
	for _, inst := range l.installments {
		if !inst.Status.Equal(valueobject.InstallmentStatusPaid) {
			return false
		}
	}
	return len(l.installments) > 0
}

func (l Loan) installmentIndex(number int) int {
	for i, inst := range l.installments {
		if inst.Number == number {
			return i
		}
	}
	return -1
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                               { return l.id }
func (l Loan) ClientID() string                         { return l.clientID }
func (l Loan) Principal() decimal.Decimal               { return l.principal }
func (l Loan) AnnualRate() decimal.Decimal              { return l.annualRate }
func (l Loan) Term() int                                { return l.term }
func (l Loan) Frequency() valueobject.PaymentFrequency  { return l.frequency }
func (l Loan) LoanType() valueobject.LoanType           { return l.loanType }
func (l Loan) StartDate() time.Time                     { return l.startDate }
func (l Loan) Status() valueobject.LoanStatus           { return l.status }
func (l Loan) AmountToPay() decimal.Decimal             { return l.amountToPay }
func (l Loan) AmountApplied() decimal.Decimal           { return l.amountApplied }
func (l Loan) OverdueAmount() decimal.Decimal           { return l.overdueAmount }
func (l Loan) AccumulatedLateFee() decimal.Decimal      { return l.accumulatedLateFee }
func (l Loan) TotalPending() decimal.Decimal            { return l.totalPending }
func (l Loan) Version() int                             { return l.version }
func (l Loan) CreatedAt() time.Time                     { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                     { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent        { return l.domainEvents }

// Installments returns a defensive copy of the schedule.
func (l Loan) Installments() []Installment {
	if l.installments == nil {
		return nil
	}
	out := make([]Installment, len(l.installments))
	copy(out, l.installments)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(events []event.DomainEvent) []event.DomainEvent {
	if events == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(events))
	copy(out, events)
	return out
}
