package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/domain/port"
	"github.com/tiendafacil/lending-service/internal/domain/service"
)

// AccrueLateFeesUseCase runs one late fee pass over a loan. Safe to invoke
// any number of times; already flagged installments are never charged again.
type AccrueLateFeesUseCase struct {
	loanRepo   port.LoanRepository
	publisher  port.EventPublisher
	engine     *service.LateFeeAccrual
	calculator *service.AggregateCalculator
}

// NewAccrueLateFeesUseCase wires dependencies.
func NewAccrueLateFeesUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *AccrueLateFeesUseCase {
	return &AccrueLateFeesUseCase{
		loanRepo:   loanRepo,
		publisher:  publisher,
		engine:     service.NewLateFeeAccrual(),
		calculator: service.NewAggregateCalculator(),
	}
}

// Execute assesses fees on newly overdue installments as of the given date.
// When nothing qualifies, the loan is left untouched and nothing is saved.
func (uc *AccrueLateFeesUseCase) Execute(
	ctx context.Context,
	req dto.AccrueLateFeesRequest,
) (dto.AccrualResponse, error) {
	now := time.Now().UTC()
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = now
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.AccrualResponse{}, fmt.Errorf("find loan: %w", err)
	}

	deltas := uc.engine.Accrue(loan.Installments(), asOf)
	if len(deltas) == 0 {
		return dto.AccrualResponse{
			LoanID:             loan.ID(),
			AccumulatedLateFee: loan.AccumulatedLateFee(),
			OverdueAmount:      loan.OverdueAmount(),
			TotalPending:       loan.TotalPending(),
		}, nil
	}

	loan, err = loan.ApplyAccrualDeltas(deltas, asOf, now)
	if err != nil {
		return dto.AccrualResponse{}, fmt.Errorf("apply accrual: %w", err)
	}

	aggregates := uc.calculator.Compute(loan.AmountToPay(), loan.Installments())
	loan = loan.WithAggregates(aggregates, now)

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.AccrualResponse{}, fmt.Errorf("save loan: %w", err)
	}
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.AccrualResponse{}, fmt.Errorf("publish events: %w", err)
	}

	totalAssessed := deltas[0].FeeAssessed
	for _, d := range deltas[1:] {
		totalAssessed = totalAssessed.Add(d.FeeAssessed)
	}

	return dto.AccrualResponse{
		LoanID:              loan.ID(),
		InstallmentsFlagged: len(deltas),
		TotalAssessed:       totalAssessed,
		AccumulatedLateFee:  loan.AccumulatedLateFee(),
		OverdueAmount:       loan.OverdueAmount(),
		TotalPending:        loan.TotalPending(),
	}, nil
}
