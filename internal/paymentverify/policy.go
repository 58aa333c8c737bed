package paymentverify

// PaymentPolicy is the process-wide payment terms, loaded once at startup and
// read-only for the lifetime of the process. The expected receiver and the
// secret are hard requirements: verification against an undefined receiver
// must fail at construction, never silently pass at runtime.
type PaymentPolicy struct {
	// ExpectedReceiver is the address a qualifying payment must be sent to.
	// Compared against records with exact, case-sensitive string equality.
	ExpectedReceiver string `validate:"required"`

	// ExpectedMinimumSOL is the payment floor, in SOL. Amounts greater than
	// or equal to it qualify; it is a floor, not an exact target.
	ExpectedMinimumSOL float64

	// SecretValue is the decrypt key disclosed after a verified payment.
	SecretValue string `validate:"required"`
}
