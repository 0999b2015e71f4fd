package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoanStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, raw := range []string{"ACTIVE", "PAID_OFF", "CANCELED"} {
			s, err := NewLoanStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
			assert.False(t, s.IsZero())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := NewLoanStatus("FROZEN")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid loan status")
	})

	t.Run("zero value", func(t *testing.T) {
		var s LoanStatus
		assert.True(t, s.IsZero())
	})
}

func TestNewInstallmentStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, raw := range []string{"PENDING", "PARTIAL", "PAID", "OVERDUE"} {
			s, err := NewInstallmentStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := NewInstallmentStatus("LATE")
		require.Error(t, err)
	})

	t.Run("equality", func(t *testing.T) {
		assert.True(t, InstallmentStatusPaid.Equal(InstallmentStatusPaid))
		assert.False(t, InstallmentStatusPaid.Equal(InstallmentStatusPending))
	})
}

func TestPaymentFrequency(t *testing.T) {
	t.Run("periods per year", func(t *testing.T) {
		cases := map[string]int{
			"MONTHLY":  12,
			"BIWEEKLY": 24,
			"WEEKLY":   52,
			"DAILY":    365,
		}
		for raw, want := range cases {
			f, err := NewPaymentFrequency(raw)
			require.NoError(t, err)
			assert.Equal(t, want, f.PeriodsPerYear())
		}
	})

	t.Run("invalid frequency", func(t *testing.T) {
		_, err := NewPaymentFrequency("QUARTERLY")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid payment frequency")
	})
}

func TestNewLoanType(t *testing.T) {
	t.Run("valid types", func(t *testing.T) {
		simple, err := NewLoanType("SIMPLE")
		require.NoError(t, err)
		assert.Equal(t, LoanTypeSimple, simple)

		amortized, err := NewLoanType("AMORTIZED")
		require.NoError(t, err)
		assert.Equal(t, LoanTypeAmortized, amortized)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := NewLoanType("BALLOON")
		require.Error(t, err)
	})
}

func TestErrorKinds(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		err := NewValidationError("amount", "must be positive")
		assert.True(t, IsValidation(err))
		assert.False(t, IsDomain(err))
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("domain error", func(t *testing.T) {
		err := NewDomainError("capital ceiling exceeded by %s", "50.00")
		assert.True(t, IsDomain(err))
		assert.False(t, IsValidation(err))
		assert.Contains(t, err.Error(), "capital ceiling")
	})
}
