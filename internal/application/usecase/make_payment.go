package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/domain/port"
	"github.com/tiendafacil/lending-service/internal/domain/service"
)

// MakePaymentUseCase allocates a payment across a loan's installments and
// recomputes the loan totals.
type MakePaymentUseCase struct {
	loanRepo     port.LoanRepository
	paymentRepo  port.PaymentRepository
	treasuryRepo port.TreasuryRepository
	publisher    port.EventPublisher
	allocator    *service.PaymentAllocator
	calculator   *service.AggregateCalculator
}

// NewMakePaymentUseCase wires dependencies.
func NewMakePaymentUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
	treasuryRepo port.TreasuryRepository,
	publisher port.EventPublisher,
) *MakePaymentUseCase {
	return &MakePaymentUseCase{
		loanRepo:     loanRepo,
		paymentRepo:  paymentRepo,
		treasuryRepo: treasuryRepo,
		publisher:    publisher,
		allocator:    service.NewPaymentAllocator(),
		calculator:   service.NewAggregateCalculator(),
	}
}

// Execute processes a payment against a loan. The waterfall runs over an
// in-memory snapshot and the resulting deltas are committed in one save.
func (uc *MakePaymentUseCase) Execute(
	ctx context.Context,
	req dto.MakePaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	result, err := uc.allocator.Allocate(loan.Installments(), req.Amount)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("allocate payment: %w", err)
	}

	loan, err = loan.ApplyPaymentDeltas(result.Deltas, paymentDate, now)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("apply payment: %w", err)
	}

	aggregates := uc.calculator.Compute(loan.AmountToPay(), loan.Installments())
	loan = loan.WithAggregates(aggregates, now)

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	record := port.PaymentRecord{
		ID:              uuid.New().String(),
		LoanID:          loan.ID(),
		Amount:          req.Amount,
		AppliedAmount:   result.TotalApplied(),
		UnappliedAmount: result.UnappliedAmount,
		PaymentMethod:   req.PaymentMethod,
		PaymentDate:     paymentDate,
		CreatedAt:       now,
	}
	if err := uc.paymentRepo.Save(ctx, record); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save payment: %w", err)
	}

	// Principal coming back releases lending capital.
	if principal := result.PrincipalApplied(); principal.IsPositive() {
		treasury, err := uc.treasuryRepo.Get(ctx)
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("load treasury: %w", err)
		}
		treasury, err = treasury.Repay(principal, now)
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("release capital: %w", err)
		}
		if err := uc.treasuryRepo.Save(ctx, treasury); err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("save treasury: %w", err)
		}
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.PaymentResponse{
		PaymentID:       record.ID,
		LoanID:          loan.ID(),
		Amount:          req.Amount,
		AppliedAmount:   record.AppliedAmount,
		UnappliedAmount: record.UnappliedAmount,
		LoanStatus:      loan.Status().String(),
		TotalPending:    loan.TotalPending(),
	}, nil
}
