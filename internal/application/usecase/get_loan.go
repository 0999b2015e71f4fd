package usecase

import (
	"context"
	"fmt"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/domain/port"
)

// GetLoanUseCase retrieves one loan with its full installment schedule.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute retrieves a loan by ID.
func (uc *GetLoanUseCase) Execute(ctx context.Context, req dto.GetLoanRequest) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return loanResponse(loan), nil
}

// ListLoansUseCase retrieves loan summaries, optionally scoped to a client.
type ListLoansUseCase struct {
	loanRepo port.LoanRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loanRepo port.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

const defaultListLimit = 50

// Execute lists loans without their installment schedules.
func (uc *ListLoansUseCase) Execute(ctx context.Context, req dto.ListLoansRequest) ([]dto.LoanResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	if req.ClientID != "" {
		found, err := uc.loanRepo.FindByClientID(ctx, req.ClientID)
		if err != nil {
			return nil, fmt.Errorf("find loans by client: %w", err)
		}
		responses := make([]dto.LoanResponse, 0, len(found))
		for _, loan := range found {
			responses = append(responses, loanSummary(loan))
		}
		return responses, nil
	}

	found, err := uc.loanRepo.List(ctx, limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	responses := make([]dto.LoanResponse, 0, len(found))
	for _, loan := range found {
		responses = append(responses, loanSummary(loan))
	}
	return responses, nil
}
