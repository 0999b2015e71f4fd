package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestClientID  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestLoanID    = uuid.MustParse("00000000-0000-0000-0000-000000000010")
	TestPaymentID = uuid.MustParse("00000000-0000-0000-0000-000000000020")
	TestUserID    = uuid.MustParse("00000000-0000-0000-0000-000000000030")
)
