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
	"github.com/tiendafacil/lending-service/internal/domain/model"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
	"github.com/tiendafacil/lending-service/pkg/testutil"
)

func TestAccrueLateFees_Execute(t *testing.T) {
	t.Run("assesses fees on newly overdue installments", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewAccrueLateFeesUseCase(loanRepo, publisher)

		// Installments 1 and 2 are due Feb 15 and Mar 15.
		resp, err := uc.Execute(context.Background(), dto.AccrueLateFeesRequest{
			LoanID: loan.ID(),
			AsOf:   time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.InstallmentsFlagged)
		// 4% of 91.66 twice.
		testutil.AssertDecimalEqual(t, decimal.RequireFromString("7.33"), resp.TotalAssessed.Round(2))
		testutil.AssertDecimalEqual(t, resp.TotalAssessed, resp.AccumulatedLateFee)

		require.Len(t, loanRepo.savedLoans, 1)
		saved := loanRepo.savedLoans[0]
		assert.True(t, saved.Installments()[0].Status.Equal(valueobject.InstallmentStatusOverdue))
		assert.True(t, saved.Installments()[1].Status.Equal(valueobject.InstallmentStatusOverdue))
		assert.True(t, saved.Installments()[2].Status.Equal(valueobject.InstallmentStatusPending))

		// totalPending grows by the assessed fees.
		want := saved.AmountToPay().Add(resp.TotalAssessed)
		testutil.AssertDecimalEqual(t, want, saved.TotalPending())
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		loan := activeLoan(t)
		asOf := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		uc := usecase.NewAccrueLateFeesUseCase(loanRepo, &mockEventPublisher{})

		first, err := uc.Execute(context.Background(), dto.AccrueLateFeesRequest{LoanID: loan.ID(), AsOf: asOf})
		require.NoError(t, err)
		require.Len(t, loanRepo.savedLoans, 1)

		// Serve the mutated loan on the next read.
		loanRepo.findByIDFunc = func(_ context.Context, id string) (model.Loan, error) {
			return loanRepo.savedLoans[0], nil
		}

		second, err := uc.Execute(context.Background(), dto.AccrueLateFeesRequest{LoanID: loan.ID(), AsOf: asOf})
		require.NoError(t, err)
		assert.Zero(t, second.InstallmentsFlagged)
		assert.True(t, second.TotalAssessed.IsZero())
		testutil.AssertDecimalEqual(t, first.AccumulatedLateFee, second.AccumulatedLateFee)

		// Nothing new was saved.
		assert.Len(t, loanRepo.savedLoans, 1)
	})

	t.Run("nothing overdue leaves the loan untouched", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		uc := usecase.NewAccrueLateFeesUseCase(loanRepo, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.AccrueLateFeesRequest{
			LoanID: loan.ID(),
			AsOf:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Zero(t, resp.InstallmentsFlagged)
		assert.Empty(t, loanRepo.savedLoans)
	})
}
