package paymentverify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Lookup failure classes. The verification service and its callers branch on
// these with errors.Is; adapters wrap them with transport-specific detail.
var (
	// ErrEmptySignature is returned when the submitted signature is empty or
	// whitespace. No lookup request is issued and no verification attempt is
	// consumed.
	ErrEmptySignature = errors.New("transaction signature is required")

	// ErrTransportFailure indicates the lookup request could not be completed
	// at all (connection refused, timeout, DNS failure).
	ErrTransportFailure = errors.New("transaction lookup request failed")

	// ErrServerRejected indicates the backend answered with a non-success
	// response. When the backend supplied a failure message it travels in a
	// RejectionError wrapping this sentinel.
	ErrServerRejected = errors.New("transaction lookup rejected by backend")

	// ErrMalformedRecord indicates a success response whose body could not be
	// decoded into a transaction record.
	ErrMalformedRecord = errors.New("transaction record could not be decoded")

	// ErrSuperseded is returned to a Verify caller whose attempt was
	// overtaken by a newer one before its lookup resolved. The result is
	// discarded and gate state is untouched.
	ErrSuperseded = errors.New("verification attempt superseded")
)

// RejectionError carries the backend-supplied failure message for a rejected
// lookup. It unwraps to ErrServerRejected so callers can treat all
// rejections uniformly while still surfacing the original message.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return ErrServerRejected.Error()
	}
	return fmt.Sprintf("%s: %s", ErrServerRejected.Error(), e.Message)
}

func (e *RejectionError) Unwrap() error {
	return ErrServerRejected
}

// TransactionRecord is the result of looking up one transaction signature.
// Records are immutable once fetched and owned exclusively by the
// verification attempt that fetched them; a new attempt always fetches fresh.
type TransactionRecord struct {
	Sender       string     // funding account address
	Receiver     string     // receiving account address
	AmountSOL    float64    // transferred amount, in SOL
	Fee          float64    // network fee, in SOL
	BlockTime    *time.Time // block timestamp, when the backend knows it
	SelfTransfer bool       // sender == receiver, as computed by the backend
}

// TransactionFetcher looks up a transaction record by its signature.
//
// Implementations must issue exactly one outbound request per call, with no
// retries and no caching: every call is a fresh lookup. Failures are reported
// through the sentinel errors above. Concurrent calls are independent; a new
// call must not cancel a prior in-flight one.
type TransactionFetcher interface {
	FetchTransaction(ctx context.Context, signature string) (TransactionRecord, error)
}

// Generic user-facing messages for failures whose detail is not actionable.
const (
	msgEmptySignature = "Please enter a transaction signature"
	msgLookupFailed   = "Failed to fetch transaction"
	msgVerifyFailed   = "Failed to verify transaction"
)

// UserMessage maps a verification failure to the text shown to the user.
// Server-supplied rejection messages are surfaced verbatim; transport and
// decoding failures collapse into generic messages since the distinction is
// not actionable by the user.
func UserMessage(err error) string {
	var rejection *RejectionError
	switch {
	case errors.Is(err, ErrEmptySignature):
		return msgEmptySignature
	case errors.As(err, &rejection) && rejection.Message != "":
		return rejection.Message
	case errors.Is(err, ErrServerRejected), errors.Is(err, ErrMalformedRecord):
		return msgLookupFailed
	default:
		return msgVerifyFailed
	}
}
