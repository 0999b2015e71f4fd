package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/application/usecase"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
	"github.com/tiendafacil/lending-service/internal/infrastructure/postgres"
)

const dateLayout = "2006-01-02"

// LoanHandler implements LoanServiceServer on top of the use cases.
type LoanHandler struct {
	UnimplementedLoanServiceServer

	createLoan    *usecase.CreateLoanUseCase
	makePayment   *usecase.MakePaymentUseCase
	accrueFees    *usecase.AccrueLateFeesUseCase
	getLoan       *usecase.GetLoanUseCase
	listLoans     *usecase.ListLoansUseCase
	getCapital    *usecase.GetCapitalUseCase
	adjustCapital *usecase.AdjustCapitalUseCase
}

// NewLoanHandler creates a handler with all use-case dependencies.
func NewLoanHandler(
	createLoan *usecase.CreateLoanUseCase,
	makePayment *usecase.MakePaymentUseCase,
	accrueFees *usecase.AccrueLateFeesUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	getCapital *usecase.GetCapitalUseCase,
	adjustCapital *usecase.AdjustCapitalUseCase,
) *LoanHandler {
	return &LoanHandler{
		createLoan:    createLoan,
		makePayment:   makePayment,
		accrueFees:    accrueFees,
		getLoan:       getLoan,
		listLoans:     listLoans,
		getCapital:    getCapital,
		adjustCapital: adjustCapital,
	}
}

// CreateLoan creates a loan and returns it with its full schedule.
func (h *LoanHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*CreateLoanResponse, error) {
	principal, err := parseAmount(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	annualRate, err := parseAmount(req.AnnualRate, "annual_rate")
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	resp, err := h.createLoan.Execute(ctx, dto.CreateLoanRequest{
		ClientID:   req.ClientId,
		Principal:  principal,
		AnnualRate: annualRate,
		Term:       req.Term,
		Frequency:  req.Frequency,
		LoanType:   req.LoanType,
		StartDate:  startDate,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &CreateLoanResponse{Loan: toWireLoan(resp)}, nil
}

// GetLoan retrieves a loan by ID.
func (h *LoanHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanId})
	if err != nil {
		return nil, mapError(err)
	}
	return &GetLoanResponse{Loan: toWireLoan(resp)}, nil
}

// ListLoans retrieves loan summaries.
func (h *LoanHandler) ListLoans(ctx context.Context, req *ListLoansRequest) (*ListLoansResponse, error) {
	resp, err := h.listLoans.Execute(ctx, dto.ListLoansRequest{
		ClientID: req.ClientId,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		return nil, mapError(err)
	}

	loans := make([]*Loan, 0, len(resp))
	for _, loan := range resp {
		loans = append(loans, toWireLoan(loan))
	}
	return &ListLoansResponse{Loans: loans}, nil
}

// MakePayment applies a payment to a loan.
func (h *LoanHandler) MakePayment(ctx context.Context, req *MakePaymentRequest) (*MakePaymentResponse, error) {
	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		paymentDate, err = parseDate(req.PaymentDate, "payment_date")
		if err != nil {
			return nil, err
		}
	}

	resp, err := h.makePayment.Execute(ctx, dto.MakePaymentRequest{
		LoanID:        req.LoanId,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &MakePaymentResponse{
		PaymentId:       resp.PaymentID,
		LoanId:          resp.LoanID,
		Amount:          money(resp.Amount),
		AppliedAmount:   money(resp.AppliedAmount),
		UnappliedAmount: money(resp.UnappliedAmount),
		LoanStatus:      resp.LoanStatus,
		TotalPending:    money(resp.TotalPending),
	}, nil
}

// AccrueLateFees runs a late fee pass over a loan.
func (h *LoanHandler) AccrueLateFees(ctx context.Context, req *AccrueLateFeesRequest) (*AccrueLateFeesResponse, error) {
	var asOf time.Time
	if req.AsOf != "" {
		var err error
		asOf, err = parseDate(req.AsOf, "as_of")
		if err != nil {
			return nil, err
		}
	}

	resp, err := h.accrueFees.Execute(ctx, dto.AccrueLateFeesRequest{
		LoanID: req.LoanId,
		AsOf:   asOf,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &AccrueLateFeesResponse{
		LoanId:              resp.LoanID,
		InstallmentsFlagged: resp.InstallmentsFlagged,
		TotalAssessed:       money(resp.TotalAssessed),
		AccumulatedLateFee:  money(resp.AccumulatedLateFee),
		OverdueAmount:       money(resp.OverdueAmount),
		TotalPending:        money(resp.TotalPending),
	}, nil
}

// GetCapital returns the treasury figures.
func (h *LoanHandler) GetCapital(ctx context.Context, _ *GetCapitalRequest) (*GetCapitalResponse, error) {
	resp, err := h.getCapital.Execute(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &GetCapitalResponse{
		TotalCapital:     money(resp.TotalCapital),
		CapitalLent:      money(resp.CapitalLent),
		AvailableCapital: money(resp.AvailableCapital),
	}, nil
}

// AdjustCapital sets a new lending capital ceiling.
func (h *LoanHandler) AdjustCapital(ctx context.Context, req *AdjustCapitalRequest) (*AdjustCapitalResponse, error) {
	totalCapital, err := parseAmount(req.TotalCapital, "total_capital")
	if err != nil {
		return nil, err
	}

	resp, err := h.adjustCapital.Execute(ctx, dto.AdjustCapitalRequest{TotalCapital: totalCapital})
	if err != nil {
		return nil, mapError(err)
	}
	return &AdjustCapitalResponse{
		TotalCapital:     money(resp.TotalCapital),
		CapitalLent:      money(resp.CapitalLent),
		AvailableCapital: money(resp.AvailableCapital),
	}, nil
}

// ---------------------------------------------------------------------------
// mapping helpers
// ---------------------------------------------------------------------------

func toWireLoan(resp dto.LoanResponse) *Loan {
	installments := make([]*Installment, 0, len(resp.Installments))
	for _, inst := range resp.Installments {
		wire := &Installment{
			Number:     inst.Number,
			DueDate:    inst.DueDate.Format(dateLayout),
			Principal:  money(inst.Principal),
			Interest:   money(inst.Interest),
			PaidAmount: money(inst.PaidAmount),
			LateFee:    money(inst.LateFee),
			Status:     inst.Status,
		}
		if inst.PaymentDate != nil {
			wire.PaymentDate = inst.PaymentDate.Format(dateLayout)
		}
		installments = append(installments, wire)
	}

	return &Loan{
		Id:                 resp.ID,
		ClientId:           resp.ClientID,
		Principal:          money(resp.Principal),
		AnnualRate:         resp.AnnualRate.String(),
		Term:               resp.Term,
		Frequency:          resp.Frequency,
		LoanType:           resp.LoanType,
		StartDate:          resp.StartDate.Format(dateLayout),
		Status:             resp.Status,
		AmountToPay:        money(resp.AmountToPay),
		AmountApplied:      money(resp.AmountApplied),
		OverdueAmount:      money(resp.OverdueAmount),
		AccumulatedLateFee: money(resp.AccumulatedLateFee),
		TotalPending:       money(resp.TotalPending),
		Installments:       installments,
	}
}

// money renders an amount for the wire. Rounding to two decimals happens
// here only; the engine works at full precision.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %q", field, raw)
	}
	return d, nil
}

func parseDate(raw, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %q (want YYYY-MM-DD)", field, raw)
	}
	return t, nil
}

// mapError translates domain failures into gRPC status codes.
func mapError(err error) error {
	switch {
	case valueobject.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case valueobject.IsDomain(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, postgres.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
