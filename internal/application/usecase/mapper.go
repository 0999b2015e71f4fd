package usecase

import (
	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/domain/model"
)

// loanResponse maps a loan aggregate to its external representation,
// including the full installment schedule.
func loanResponse(loan model.Loan) dto.LoanResponse {
	installments := loan.Installments()
	instResponses := make([]dto.InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		instResponses = append(instResponses, dto.InstallmentResponse{
			Number:      inst.Number,
			DueDate:     inst.DueDate,
			Principal:   inst.Principal,
			Interest:    inst.Interest,
			PaidAmount:  inst.PaidAmount,
			LateFee:     inst.LateFee,
			Status:      inst.Status.String(),
			PaymentDate: inst.PaymentDate,
		})
	}

	return dto.LoanResponse{
		ID:                 loan.ID(),
		ClientID:           loan.ClientID(),
		Principal:          loan.Principal(),
		AnnualRate:         loan.AnnualRate(),
		Term:               loan.Term(),
		Frequency:          loan.Frequency().String(),
		LoanType:           loan.LoanType().String(),
		StartDate:          loan.StartDate(),
		Status:             loan.Status().String(),
		AmountToPay:        loan.AmountToPay(),
		AmountApplied:      loan.AmountApplied(),
		OverdueAmount:      loan.OverdueAmount(),
		AccumulatedLateFee: loan.AccumulatedLateFee(),
		TotalPending:       loan.TotalPending(),
		Installments:       instResponses,
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
}

// loanSummary maps a loan without its installments, for list endpoints.
func loanSummary(loan model.Loan) dto.LoanResponse {
	resp := loanResponse(loan)
	resp.Installments = nil
	return resp
}

func capitalResponse(treasury model.Treasury) dto.CapitalResponse {
	return dto.CapitalResponse{
		TotalCapital:     treasury.TotalCapital(),
		CapitalLent:      treasury.CapitalLent(),
		AvailableCapital: treasury.AvailableCapital(),
		UpdatedAt:        treasury.UpdatedAt(),
	}
}
