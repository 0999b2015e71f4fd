package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/application/usecase"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
	"github.com/tiendafacil/lending-service/pkg/testutil"
)

func TestGetCapital_Execute(t *testing.T) {
	treasuryRepo := &mockTreasuryRepository{treasury: fundedTreasury(10000)}

	uc := usecase.NewGetCapitalUseCase(treasuryRepo)
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	testutil.AssertDecimalEqual(t, decimal.NewFromInt(10000), resp.TotalCapital)
	assert.True(t, resp.CapitalLent.IsZero())
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(10000), resp.AvailableCapital)
}

func TestAdjustCapital_Execute(t *testing.T) {
	t.Run("raises the ceiling", func(t *testing.T) {
		treasuryRepo := &mockTreasuryRepository{treasury: fundedTreasury(10000)}
		publisher := &mockEventPublisher{}

		uc := usecase.NewAdjustCapitalUseCase(treasuryRepo, publisher)
		resp, err := uc.Execute(context.Background(), dto.AdjustCapitalRequest{
			TotalCapital: decimal.NewFromInt(25000),
		})
		require.NoError(t, err)

		testutil.AssertDecimalEqual(t, decimal.NewFromInt(25000), resp.TotalCapital)
		require.Len(t, treasuryRepo.saved, 1)
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("rejects a negative ceiling", func(t *testing.T) {
		treasuryRepo := &mockTreasuryRepository{treasury: fundedTreasury(10000)}
		uc := usecase.NewAdjustCapitalUseCase(treasuryRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.AdjustCapitalRequest{
			TotalCapital: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
		assert.Empty(t, treasuryRepo.saved)
	})
}
