package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/domain/model"
	"github.com/tiendafacil/lending-service/internal/domain/port"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

// CreateLoanUseCase creates a loan, generates its schedule and reserves the
// principal against the lending capital.
type CreateLoanUseCase struct {
	loanRepo     port.LoanRepository
	treasuryRepo port.TreasuryRepository
	publisher    port.EventPublisher
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	loanRepo port.LoanRepository,
	treasuryRepo port.TreasuryRepository,
	publisher port.EventPublisher,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:     loanRepo,
		treasuryRepo: treasuryRepo,
		publisher:    publisher,
	}
}

// Execute creates the loan. The capital ceiling is checked before anything
// is persisted; a loan that would overdraw the treasury is rejected whole.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	frequency, err := valueobject.NewPaymentFrequency(req.Frequency)
	if err != nil {
		return dto.LoanResponse{}, valueobject.NewValidationError("frequency", err.Error())
	}
	loanType, err := valueobject.NewLoanType(req.LoanType)
	if err != nil {
		return dto.LoanResponse{}, valueobject.NewValidationError("loanType", err.Error())
	}

	loan, err := model.NewLoan(req.ClientID, req.Principal, req.AnnualRate, req.Term,
		frequency, loanType, req.StartDate, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	treasury, err := uc.treasuryRepo.Get(ctx)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("load treasury: %w", err)
	}
	treasury, err = treasury.Lend(req.Principal, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("reserve capital: %w", err)
	}

	if err := uc.treasuryRepo.Save(ctx, treasury); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save treasury: %w", err)
	}
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return loanResponse(loan), nil
}
