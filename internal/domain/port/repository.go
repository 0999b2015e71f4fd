package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/event"
	"github.com/tiendafacil/lending-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanRepository persists and retrieves loans together with their
// installments. Save commits the loan row and every installment atomically.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error)
	List(ctx context.Context, limit, offset int) ([]model.Loan, error)
}

// PaymentRecord is one received payment as stored for audit purposes.
type PaymentRecord struct {
	ID              string
	LoanID          string
	Amount          decimal.Decimal
	AppliedAmount   decimal.Decimal
	UnappliedAmount decimal.Decimal
	PaymentMethod   string
	PaymentDate     time.Time
	CreatedAt       time.Time
}

// PaymentRepository persists received payments.
type PaymentRepository interface {
	Save(ctx context.Context, payment PaymentRecord) error
	FindByLoanID(ctx context.Context, loanID string) ([]PaymentRecord, error)
}

// TreasuryRepository persists the single lending capital record.
type TreasuryRepository interface {
	Save(ctx context.Context, treasury model.Treasury) error
	Get(ctx context.Context) (model.Treasury, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
