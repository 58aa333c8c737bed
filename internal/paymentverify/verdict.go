package paymentverify

// Verdict is the structured result of comparing one transaction record
// against the payment policy. It is derived fresh from each (record, policy)
// pair and never persisted or cached.
type Verdict struct {
	ReceiverValid bool // record receiver exactly matches the expected receiver
	AmountValid   bool // transferred amount meets or exceeds the expected minimum
	Valid         bool // both checks passed
}

// Evaluate scores a transaction record against the payment policy.
//
// It is pure, total, and deterministic: any record, however degenerate (zero
// amount, empty addresses, sender equal to receiver), yields a verdict and
// never fails. The receiver comparison is exact string equality; the amount
// comparison is >=, so paying exactly the minimum qualifies. SelfTransfer is
// informational only and never influences the verdict.
func Evaluate(record TransactionRecord, policy PaymentPolicy) Verdict {
	receiverValid := record.Receiver == policy.ExpectedReceiver
	amountValid := record.AmountSOL >= policy.ExpectedMinimumSOL

	return Verdict{
		ReceiverValid: receiverValid,
		AmountValid:   amountValid,
		Valid:         receiverValid && amountValid,
	}
}
