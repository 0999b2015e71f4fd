package grpc

// proto.go defines the gRPC server interface derived from
// tiendafacil/lending/v1/lending.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/tiendafacil/api/gen/go/tiendafacil/lending/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Wire types. Amounts travel as strings rounded to two decimals; dates as
// YYYY-MM-DD calendar dates.
// ---------------------------------------------------------------------------

type Installment struct {
	Number      int    `json:"number"`
	DueDate     string `json:"due_date"`
	Principal   string `json:"principal"`
	Interest    string `json:"interest"`
	PaidAmount  string `json:"paid_amount"`
	LateFee     string `json:"late_fee"`
	Status      string `json:"status"`
	PaymentDate string `json:"payment_date,omitempty"`
}

type Loan struct {
	Id                 string         `json:"id"`
	ClientId           string         `json:"client_id"`
	Principal          string         `json:"principal"`
	AnnualRate         string         `json:"annual_rate"`
	Term               int            `json:"term"`
	Frequency          string         `json:"frequency"`
	LoanType           string         `json:"loan_type"`
	StartDate          string         `json:"start_date"`
	Status             string         `json:"status"`
	AmountToPay        string         `json:"amount_to_pay"`
	AmountApplied      string         `json:"amount_applied"`
	OverdueAmount      string         `json:"overdue_amount"`
	AccumulatedLateFee string         `json:"accumulated_late_fee"`
	TotalPending       string         `json:"total_pending"`
	Installments       []*Installment `json:"installments,omitempty"`
}

type CreateLoanRequest struct {
	ClientId   string `json:"client_id"`
	Principal  string `json:"principal"`
	AnnualRate string `json:"annual_rate"`
	Term       int    `json:"term"`
	Frequency  string `json:"frequency"`
	LoanType   string `json:"loan_type"`
	StartDate  string `json:"start_date"`
}

type CreateLoanResponse struct {
	Loan *Loan `json:"loan"`
}

type GetLoanRequest struct {
	LoanId string `json:"loan_id"`
}

type GetLoanResponse struct {
	Loan *Loan `json:"loan"`
}

type ListLoansRequest struct {
	ClientId string `json:"client_id,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

type ListLoansResponse struct {
	Loans []*Loan `json:"loans"`
}

type MakePaymentRequest struct {
	LoanId        string `json:"loan_id"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentDate   string `json:"payment_date,omitempty"`
}

type MakePaymentResponse struct {
	PaymentId       string `json:"payment_id"`
	LoanId          string `json:"loan_id"`
	Amount          string `json:"amount"`
	AppliedAmount   string `json:"applied_amount"`
	UnappliedAmount string `json:"unapplied_amount"`
	LoanStatus      string `json:"loan_status"`
	TotalPending    string `json:"total_pending"`
}

type AccrueLateFeesRequest struct {
	LoanId string `json:"loan_id"`
	AsOf   string `json:"as_of,omitempty"`
}

type AccrueLateFeesResponse struct {
	LoanId              string `json:"loan_id"`
	InstallmentsFlagged int    `json:"installments_flagged"`
	TotalAssessed       string `json:"total_assessed"`
	AccumulatedLateFee  string `json:"accumulated_late_fee"`
	OverdueAmount       string `json:"overdue_amount"`
	TotalPending        string `json:"total_pending"`
}

type GetCapitalRequest struct{}

type GetCapitalResponse struct {
	TotalCapital     string `json:"total_capital"`
	CapitalLent      string `json:"capital_lent"`
	AvailableCapital string `json:"available_capital"`
}

type AdjustCapitalRequest struct {
	TotalCapital string `json:"total_capital"`
}

type AdjustCapitalResponse struct {
	TotalCapital     string `json:"total_capital"`
	CapitalLent      string `json:"capital_lent"`
	AvailableCapital string `json:"available_capital"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// LoanServiceServer is the server API for LoanService.
// It mirrors the proto-generated interface from tiendafacil.lending.v1.LoanService.
type LoanServiceServer interface {
	CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error)
	MakePayment(context.Context, *MakePaymentRequest) (*MakePaymentResponse, error)
	AccrueLateFees(context.Context, *AccrueLateFeesRequest) (*AccrueLateFeesResponse, error)
	GetCapital(context.Context, *GetCapitalRequest) (*GetCapitalResponse, error)
	AdjustCapital(context.Context, *AdjustCapitalRequest) (*AdjustCapitalResponse, error)
	mustEmbedUnimplementedLoanServiceServer()
}

// UnimplementedLoanServiceServer provides forward-compatible default implementations.
type UnimplementedLoanServiceServer struct{}

func (UnimplementedLoanServiceServer) CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLoan not implemented")
}
func (UnimplementedLoanServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLoanServiceServer) ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedLoanServiceServer) MakePayment(context.Context, *MakePaymentRequest) (*MakePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakePayment not implemented")
}
func (UnimplementedLoanServiceServer) AccrueLateFees(context.Context, *AccrueLateFeesRequest) (*AccrueLateFeesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AccrueLateFees not implemented")
}
func (UnimplementedLoanServiceServer) GetCapital(context.Context, *GetCapitalRequest) (*GetCapitalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCapital not implemented")
}
func (UnimplementedLoanServiceServer) AdjustCapital(context.Context, *AdjustCapitalRequest) (*AdjustCapitalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdjustCapital not implemented")
}
func (UnimplementedLoanServiceServer) mustEmbedUnimplementedLoanServiceServer() {}

// RegisterLoanServiceServer registers the LoanServiceServer with the gRPC server.
func RegisterLoanServiceServer(s *grpclib.Server, srv LoanServiceServer) {
	s.RegisterService(&_LoanService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "tiendafacil.lending.v1.LoanService",
	HandlerType: (*LoanServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateLoan", Handler: _LoanService_CreateLoan_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LoanService_GetLoan_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _LoanService_ListLoans_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "MakePayment", Handler: _LoanService_MakePayment_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "AccrueLateFees", Handler: _LoanService_AccrueLateFees_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetCapital", Handler: _LoanService_GetCapital_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "AdjustCapital", Handler: _LoanService_AdjustCapital_Handler},   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_CreateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).CreateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tiendafacil.lending.v1.LoanService/CreateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).CreateLoan(ctx, req.(*CreateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tiendafacil.lending.v1.LoanService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tiendafacil.lending.v1.LoanService/ListLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ListLoans(ctx, req.(*ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_MakePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).MakePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tiendafacil.lending.v1.LoanService/MakePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).MakePayment(ctx, req.(*MakePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_AccrueLateFees_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AccrueLateFeesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).AccrueLateFees(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tiendafacil.lending.v1.LoanService/AccrueLateFees",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).AccrueLateFees(ctx, req.(*AccrueLateFeesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetCapital_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCapitalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetCapital(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tiendafacil.lending.v1.LoanService/GetCapital",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetCapital(ctx, req.(*GetCapitalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_AdjustCapital_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdjustCapitalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).AdjustCapital(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tiendafacil.lending.v1.LoanService/AdjustCapital",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).AdjustCapital(ctx, req.(*AdjustCapitalRequest))
	}
	return interceptor(ctx, in, info, handler)
}
