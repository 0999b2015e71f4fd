package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/event"
	"github.com/tiendafacil/lending-service/internal/domain/model"
	"github.com/tiendafacil/lending-service/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

type mockLoanRepository struct {
	findByIDFunc       func(ctx context.Context, id string) (model.Loan, error)
	findByClientIDFunc func(ctx context.Context, clientID string) ([]model.Loan, error)
	listFunc           func(ctx context.Context, limit, offset int) ([]model.Loan, error)
	saveErr            error
	savedLoans         []model.Loan
}

func (m *mockLoanRepository) Save(_ context.Context, loan model.Loan) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, errors.New("loan not found")
}

func (m *mockLoanRepository) FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error) {
	if m.findByClientIDFunc != nil {
		return m.findByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockLoanRepository) List(ctx context.Context, limit, offset int) ([]model.Loan, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

type mockPaymentRepository struct {
	saveErr      error
	savedRecords []port.PaymentRecord
}

func (m *mockPaymentRepository) Save(_ context.Context, payment port.PaymentRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedRecords = append(m.savedRecords, payment)
	return nil
}

func (m *mockPaymentRepository) FindByLoanID(_ context.Context, loanID string) ([]port.PaymentRecord, error) {
	var out []port.PaymentRecord
	for _, rec := range m.savedRecords {
		if rec.LoanID == loanID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type mockTreasuryRepository struct {
	treasury model.Treasury
	getErr   error
	saveErr  error
	saved    []model.Treasury
}

func (m *mockTreasuryRepository) Get(_ context.Context) (model.Treasury, error) {
	if m.getErr != nil {
		return model.Treasury{}, m.getErr
	}
	return m.treasury, nil
}

func (m *mockTreasuryRepository) Save(_ context.Context, treasury model.Treasury) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.treasury = treasury
	m.saved = append(m.saved, treasury)
	return nil
}

// ---------------------------------------------------------------------------
// Mock event publisher
// ---------------------------------------------------------------------------

type mockEventPublisher struct {
	publishErr      error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.publishedEvents = append(m.publishedEvents, events...)
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func fundedTreasury(capital int64) model.Treasury {
	treasury, err := model.NewTreasury(decimal.NewFromInt(capital), time.Now().UTC())
	if err != nil {
		panic(err)
	}
	return treasury
}
