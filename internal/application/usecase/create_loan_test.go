package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/application/usecase"
	"github.com/tiendafacil/lending-service/pkg/testutil"
)

func createLoanRequest() dto.CreateLoanRequest {
	return dto.CreateLoanRequest{
		ClientID:   testutil.TestClientID.String(),
		Principal:  decimal.NewFromInt(1000),
		AnnualRate: decimal.NewFromInt(10),
		Term:       12,
		Frequency:  "MONTHLY",
		LoanType:   "SIMPLE",
		StartDate:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateLoan_Execute(t *testing.T) {
	t.Run("creates a loan and reserves capital", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		treasuryRepo := &mockTreasuryRepository{treasury: fundedTreasury(5000)}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, treasuryRepo, publisher)
		resp, err := uc.Execute(context.Background(), createLoanRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Len(t, resp.Installments, 12)
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("1100"), resp.AmountToPay.Round(2))
		testutil.AssertDecimalEqual(t, resp.AmountToPay, resp.TotalPending)

		require.Len(t, loanRepo.savedLoans, 1)
		require.Len(t, treasuryRepo.saved, 1)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(1000), treasuryRepo.treasury.CapitalLent())
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("rejects a loan past the capital ceiling", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		treasuryRepo := &mockTreasuryRepository{treasury: fundedTreasury(500)}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, treasuryRepo, publisher)
		_, err := uc.Execute(context.Background(), createLoanRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient lending capital")
		assert.Empty(t, loanRepo.savedLoans)
		assert.Empty(t, treasuryRepo.saved)
	})

	t.Run("rejects an unknown frequency", func(t *testing.T) {
		uc := usecase.NewCreateLoanUseCase(&mockLoanRepository{}, &mockTreasuryRepository{treasury: fundedTreasury(5000)}, &mockEventPublisher{})

		req := createLoanRequest()
		req.Frequency = "QUARTERLY"
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("rejects an unknown loan type", func(t *testing.T) {
		uc := usecase.NewCreateLoanUseCase(&mockLoanRepository{}, &mockTreasuryRepository{treasury: fundedTreasury(5000)}, &mockEventPublisher{})

		req := createLoanRequest()
		req.LoanType = "BALLOON"
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("rejects invalid schedule input before touching the treasury", func(t *testing.T) {
		treasuryRepo := &mockTreasuryRepository{treasury: fundedTreasury(5000)}
		uc := usecase.NewCreateLoanUseCase(&mockLoanRepository{}, treasuryRepo, &mockEventPublisher{})

		req := createLoanRequest()
		req.Principal = decimal.Zero
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Empty(t, treasuryRepo.saved)
	})
}
