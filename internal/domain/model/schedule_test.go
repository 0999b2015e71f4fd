package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSchedule_SimpleInterest(t *testing.T) {
	// principal=1000, rate=10%, term=12, monthly: total interest is 100.00,
	// split evenly with the principal across twelve installments.
	schedule, err := GenerateSchedule(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(10),
		12,
		valueobject.FrequencyMonthly,
		valueobject.LoanTypeSimple,
		date(2024, time.January, 15),
	)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	totalInterest := decimal.Zero
	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, "83.33", inst.Principal.Round(2).String())
		assert.Equal(t, "8.33", inst.Interest.Round(2).String())
		assert.True(t, inst.Status.Equal(valueobject.InstallmentStatusPending))
		assert.True(t, inst.PaidAmount.IsZero())
		assert.True(t, inst.LateFee.IsZero())
		totalInterest = totalInterest.Add(inst.Interest)
	}
	assert.Equal(t, "100.00", totalInterest.StringFixed(2))

	// Installment 1 is due one month after the start date.
	assert.Equal(t, date(2024, time.February, 15), schedule[0].DueDate)
	assert.Equal(t, date(2025, time.January, 15), schedule[11].DueDate)
}

func TestGenerateSchedule_AmortizedZeroRate(t *testing.T) {
	schedule, err := GenerateSchedule(
		decimal.NewFromInt(1200),
		decimal.Zero,
		12,
		valueobject.FrequencyMonthly,
		valueobject.LoanTypeAmortized,
		date(2024, time.March, 1),
	)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	for _, inst := range schedule {
		assert.True(t, inst.Interest.IsZero(), "installment %d has interest %s", inst.Number, inst.Interest)
		assert.Equal(t, "100.00", inst.Principal.StringFixed(2))
	}
}

func TestGenerateSchedule_AmortizedPrincipalSumsBack(t *testing.T) {
	cases := []struct {
		name      string
		principal int64
		rate      string
		term      int
		frequency valueobject.PaymentFrequency
	}{
		{"monthly 12x at 10%", 1000, "10", 12, valueobject.FrequencyMonthly},
		{"biweekly 24x at 24%", 5000, "24", 24, valueobject.FrequencyBiweekly},
		{"weekly 8x at 52%", 750, "52", 8, valueobject.FrequencyWeekly},
		{"daily 30x at 36.5%", 300, "36.5", 30, valueobject.FrequencyDaily},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			principal := decimal.NewFromInt(tc.principal)
			rate := decimal.RequireFromString(tc.rate)

			schedule, err := GenerateSchedule(principal, rate, tc.term, tc.frequency, valueobject.LoanTypeAmortized, date(2024, time.June, 1))
			require.NoError(t, err)
			require.Len(t, schedule, tc.term)

			sum := decimal.Zero
			for _, inst := range schedule {
				sum = sum.Add(inst.Principal)
			}
			diff := sum.Sub(principal).Abs()
			assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")),
				"principal sum %s differs from %s by %s", sum, principal, diff)
		})
	}
}

func TestGenerateSchedule_DueDates(t *testing.T) {
	start := date(2024, time.January, 31)

	t.Run("monthly steps by calendar month", func(t *testing.T) {
		schedule, err := GenerateSchedule(decimal.NewFromInt(100), decimal.NewFromInt(5), 3,
			valueobject.FrequencyMonthly, valueobject.LoanTypeSimple, start)
		require.NoError(t, err)
		// Go normalizes Jan 31 + 1 month to Mar 2 in a leap year.
		assert.Equal(t, start.AddDate(0, 1, 0), schedule[0].DueDate)
		assert.Equal(t, start.AddDate(0, 3, 0), schedule[2].DueDate)
	})

	t.Run("biweekly steps by 14 days", func(t *testing.T) {
		schedule, err := GenerateSchedule(decimal.NewFromInt(100), decimal.NewFromInt(5), 3,
			valueobject.FrequencyBiweekly, valueobject.LoanTypeSimple, start)
		require.NoError(t, err)
		assert.Equal(t, start.AddDate(0, 0, 14), schedule[0].DueDate)
		assert.Equal(t, start.AddDate(0, 0, 42), schedule[2].DueDate)
	})

	t.Run("weekly steps by 7 days", func(t *testing.T) {
		schedule, err := GenerateSchedule(decimal.NewFromInt(100), decimal.NewFromInt(5), 2,
			valueobject.FrequencyWeekly, valueobject.LoanTypeSimple, start)
		require.NoError(t, err)
		assert.Equal(t, start.AddDate(0, 0, 7), schedule[0].DueDate)
		assert.Equal(t, start.AddDate(0, 0, 14), schedule[1].DueDate)
	})

	t.Run("daily first installment is due on the start date", func(t *testing.T) {
		schedule, err := GenerateSchedule(decimal.NewFromInt(100), decimal.NewFromInt(5), 3,
			valueobject.FrequencyDaily, valueobject.LoanTypeSimple, start)
		require.NoError(t, err)
		assert.Equal(t, start, schedule[0].DueDate)
		assert.Equal(t, start.AddDate(0, 0, 2), schedule[2].DueDate)
	})
}

func TestGenerateSchedule_Validation(t *testing.T) {
	valid := func() (decimal.Decimal, decimal.Decimal, int, valueobject.PaymentFrequency, valueobject.LoanType) {
		return decimal.NewFromInt(1000), decimal.NewFromInt(10), 12, valueobject.FrequencyMonthly, valueobject.LoanTypeSimple
	}

	t.Run("non-positive principal", func(t *testing.T) {
		_, rate, term, freq, typ := valid()
		_, err := GenerateSchedule(decimal.Zero, rate, term, freq, typ, date(2024, time.January, 1))
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("negative rate", func(t *testing.T) {
		principal, _, term, freq, typ := valid()
		_, err := GenerateSchedule(principal, decimal.NewFromInt(-1), term, freq, typ, date(2024, time.January, 1))
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("rate above 100", func(t *testing.T) {
		principal, _, term, freq, typ := valid()
		_, err := GenerateSchedule(principal, decimal.NewFromInt(101), term, freq, typ, date(2024, time.January, 1))
		require.Error(t, err)
	})

	t.Run("zero term", func(t *testing.T) {
		principal, rate, _, freq, typ := valid()
		_, err := GenerateSchedule(principal, rate, 0, freq, typ, date(2024, time.January, 1))
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("zero-value frequency", func(t *testing.T) {
		principal, rate, term, _, typ := valid()
		_, err := GenerateSchedule(principal, rate, term, valueobject.PaymentFrequency{}, typ, date(2024, time.January, 1))
		require.Error(t, err)
	})

	t.Run("zero-value loan type", func(t *testing.T) {
		principal, rate, term, freq, _ := valid()
		_, err := GenerateSchedule(principal, rate, term, freq, valueobject.LoanType{}, date(2024, time.January, 1))
		require.Error(t, err)
	})
}
