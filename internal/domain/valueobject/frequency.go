package valueobject

import (
	"fmt"
)

// PaymentFrequency represents how often installments fall due.
type PaymentFrequency struct {
	value string
}

const (
	frequencyMonthly  = "MONTHLY"
	frequencyBiweekly = "BIWEEKLY"
	frequencyWeekly   = "WEEKLY"
	frequencyDaily    = "DAILY"
)

var (
	FrequencyMonthly  = PaymentFrequency{value: frequencyMonthly}
	FrequencyBiweekly = PaymentFrequency{value: frequencyBiweekly}
	FrequencyWeekly   = PaymentFrequency{value: frequencyWeekly}
	FrequencyDaily    = PaymentFrequency{value: frequencyDaily}
)

var validFrequencies = map[string]PaymentFrequency{
	frequencyMonthly:  FrequencyMonthly,
	frequencyBiweekly: FrequencyBiweekly,
	frequencyWeekly:   FrequencyWeekly,
	frequencyDaily:    FrequencyDaily,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validFrequencies[s]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("invalid payment frequency: %q", s)
	}
	return v, nil
}

// PeriodsPerYear returns the number of billing periods in one year.
func (f PaymentFrequency) PeriodsPerYear() int {
	switch f.value {
	case frequencyMonthly:
		return 12
	case frequencyBiweekly:
		return 24
	case frequencyWeekly:
		return 52
	case frequencyDaily:
		return 365
	default:
		return 0
	}
}

// String returns the string representation of the frequency.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool { return f.value == other.value }
