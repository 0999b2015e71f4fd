package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendafacil/lending-service/internal/domain/event"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
	"github.com/tiendafacil/lending-service/pkg/testutil"
)

func TestNewTreasury(t *testing.T) {
	now := date(2024, time.January, 1)

	treasury, err := NewTreasury(decimal.NewFromInt(10000), now)
	require.NoError(t, err)
	assert.Equal(t, TreasuryID, treasury.ID())
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(10000), treasury.TotalCapital())
	assert.True(t, treasury.CapitalLent().IsZero())
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(10000), treasury.AvailableCapital())

	_, err = NewTreasury(decimal.NewFromInt(-1), now)
	require.Error(t, err)
	assert.True(t, valueobject.IsValidation(err))
}

func TestTreasury_Lend(t *testing.T) {
	now := date(2024, time.January, 1)
	treasury, err := NewTreasury(decimal.NewFromInt(1000), now)
	require.NoError(t, err)

	t.Run("within the ceiling", func(t *testing.T) {
		next, err := treasury.Lend(decimal.NewFromInt(600), now)
		require.NoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(600), next.CapitalLent())
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(400), next.AvailableCapital())
	})

	t.Run("past the ceiling", func(t *testing.T) {
		next, err := treasury.Lend(decimal.NewFromInt(900), now)
		require.NoError(t, err)

		_, err = next.Lend(decimal.NewFromInt(200), now)
		require.Error(t, err)
		assert.True(t, valueobject.IsDomain(err))
		assert.Contains(t, err.Error(), "insufficient lending capital")
	})

	t.Run("exactly the ceiling", func(t *testing.T) {
		next, err := treasury.Lend(decimal.NewFromInt(1000), now)
		require.NoError(t, err)
		assert.True(t, next.AvailableCapital().IsZero())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := treasury.Lend(decimal.Zero, now)
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})
}

func TestTreasury_Repay(t *testing.T) {
	now := date(2024, time.January, 1)
	treasury, err := NewTreasury(decimal.NewFromInt(1000), now)
	require.NoError(t, err)
	treasury, err = treasury.Lend(decimal.NewFromInt(500), now)
	require.NoError(t, err)

	t.Run("releases capital", func(t *testing.T) {
		next, err := treasury.Repay(decimal.NewFromInt(200), now)
		require.NoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(300), next.CapitalLent())
	})

	t.Run("floors at zero", func(t *testing.T) {
		next, err := treasury.Repay(decimal.NewFromInt(800), now)
		require.NoError(t, err)
		assert.True(t, next.CapitalLent().IsZero())
	})
}

func TestTreasury_SetTotalCapital(t *testing.T) {
	now := date(2024, time.January, 1)
	treasury, err := NewTreasury(decimal.NewFromInt(1000), now)
	require.NoError(t, err)
	treasury, err = treasury.Lend(decimal.NewFromInt(400), now)
	require.NoError(t, err)

	t.Run("raises the ceiling and emits CapitalAdjusted", func(t *testing.T) {
		next, err := treasury.SetTotalCapital(decimal.NewFromInt(2000), now)
		require.NoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(2000), next.TotalCapital())
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(1600), next.AvailableCapital())

		events := next.DomainEvents()
		require.NotEmpty(t, events)
		adjusted, ok := events[len(events)-1].(event.CapitalAdjusted)
		require.True(t, ok)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(2000), adjusted.NewCapital)
	})

	t.Run("cannot drop below capital lent", func(t *testing.T) {
		_, err := treasury.SetTotalCapital(decimal.NewFromInt(300), now)
		require.Error(t, err)
		assert.True(t, valueobject.IsDomain(err))
	})

	t.Run("cannot go negative", func(t *testing.T) {
		_, err := treasury.SetTotalCapital(decimal.NewFromInt(-5), now)
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})
}
