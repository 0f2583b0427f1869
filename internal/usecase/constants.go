package usecase

import "time"

const (
	// SeededTransactionCount is the size of the synthetic transaction
	// collection created on first boot and after every reset.
	SeededTransactionCount = 150

	// baseWalletBalance is the constant the created-transaction balance
	// math starts from. It is not wired to a real ledger.
	baseWalletBalance = "12500.75"

	// expenseFeeRate is the surcharge applied to created expense
	// transactions.
	expenseFeeRate = "0.01"

	// DefaultLatencyMin and DefaultLatencyMax bound the simulated backend
	// delay.
	DefaultLatencyMin = 200 * time.Millisecond
	DefaultLatencyMax = 500 * time.Millisecond
)
