// Package paymentverify implements the payment-gated release workflow: it
// looks up a transaction by signature through a TransactionFetcher, scores it
// against the payment policy with a pure validation function, and drives the
// disclosure gate that guards the decrypt key.
//
// Each call to Verify is one attempt. Attempts carry a monotonically
// increasing sequence number: starting a new attempt locks the gate and
// supersedes every attempt still in flight, whose results are then discarded
// when they eventually resolve. Gate state therefore always reflects the
// latest started attempt, not the latest completed one.
package paymentverify

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/voidbay/paygate/internal/pkg/logger"
	"github.com/voidbay/paygate/internal/pkg/validator"
)

// defaultCopiedDwell is how long the cosmetic "copied" indicator stays on
// after the secret is placed on the clipboard.
const defaultCopiedDwell = 2 * time.Second

// Result is what a completed, non-superseded verification attempt reports
// back for rendering. It never carries the secret; disclosure goes through
// Reveal exclusively.
type Result struct {
	AttemptID        string            // correlation id for logs, not the superseding counter
	Record           TransactionRecord // the fetched record, verbatim
	Verdict          Verdict           // validation outcome
	ExpectedReceiver string            // policy value, for display next to the record
	ExpectedSOL      float64           // policy value, for display next to the record
}

// Service is the payment verification workflow.
type Service interface {
	// Verify runs one verification attempt for the given signature: it
	// resets the disclosure gate, fetches the transaction record, and scores
	// it against the policy. An empty or whitespace signature fails with
	// ErrEmptySignature before any of that happens, leaving the previous
	// attempt's outcome and gate state intact. If a newer attempt starts
	// before this one resolves, Verify returns ErrSuperseded and the result
	// is discarded.
	Verify(ctx context.Context, signature string) (Result, error)

	// Reveal unlocks and returns the secret. It only succeeds when the
	// latest started attempt produced a valid verdict; otherwise it is a
	// no-op returning ErrGateLocked.
	Reveal() (string, error)

	// Revealed reports whether the gate is currently open.
	Revealed() bool

	// CopySecret places the revealed secret on the clipboard verbatim and
	// lights the self-clearing "copied" indicator. Idempotent; fails with
	// ErrGateLocked while the gate is closed.
	CopySecret(ctx context.Context) error

	// Copied reports whether the cosmetic "copied" indicator is currently on.
	Copied() bool
}

type service struct {
	fetcher   TransactionFetcher
	clipboard Clipboard
	policy    PaymentPolicy

	copiedDwell time.Duration

	mu            sync.Mutex
	attemptSeq    uint64   // superseding counter; bumped when an attempt starts
	latestVerdict *Verdict // verdict of the latest started attempt, nil until it resolves
	revealed      bool
	copied        bool
	copiedGen     uint64 // invalidates stale indicator timers
	copiedTimer   *time.Timer
}

var _ Service = (*service)(nil)

type config struct {
	copiedDwell time.Duration
}

// Option customizes the verification service.
type Option func(*config)

// WithCopiedDwell overrides how long the "copied" indicator stays lit.
// Default: 2 seconds.
func WithCopiedDwell(d time.Duration) Option {
	return func(c *config) {
		c.copiedDwell = d
	}
}

// New creates the verification service for the given policy. The policy is
// validated up front: a missing expected receiver or secret is a hard
// misconfiguration and fails construction.
func New(fetcher TransactionFetcher, clipboard Clipboard, policy PaymentPolicy, opts ...Option) (*service, error) {
	if err := validator.Validate(policy); err != nil {
		return nil, err
	}

	cfg := config{
		copiedDwell: defaultCopiedDwell,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		fetcher:     fetcher,
		clipboard:   clipboard,
		policy:      policy,
		copiedDwell: cfg.copiedDwell,
	}, nil
}

func (s *service) Verify(ctx context.Context, signature string) (Result, error) {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return Result{}, ErrEmptySignature
	}

	attempt := s.beginAttempt()
	attemptID := uuid.Must(uuid.NewV7()).String()

	logger.Debug(ctx, "transaction lookup started",
		"attempt_id", attemptID,
		"signature", signature,
	)

	record, err := s.fetcher.FetchTransaction(ctx, signature)

	s.mu.Lock()
	defer s.mu.Unlock()

	if attempt != s.attemptSeq {
		logger.Debug(ctx, "discarding superseded verification result",
			"attempt_id", attemptID,
		)
		return Result{}, ErrSuperseded
	}

	if err != nil {
		logger.Warn(ctx, "transaction lookup failed",
			"attempt_id", attemptID,
			"error", err,
		)
		return Result{}, err
	}

	verdict := Evaluate(record, s.policy)
	s.latestVerdict = &verdict

	logger.Info(ctx, "transaction verified",
		"attempt_id", attemptID,
		"receiver_valid", verdict.ReceiverValid,
		"amount_valid", verdict.AmountValid,
		"valid", verdict.Valid,
		"self_transfer", record.SelfTransfer,
	)

	return Result{
		AttemptID:        attemptID,
		Record:           record,
		Verdict:          verdict,
		ExpectedReceiver: s.policy.ExpectedReceiver,
		ExpectedSOL:      s.policy.ExpectedMinimumSOL,
	}, nil
}

// beginAttempt claims the next attempt sequence number, clearing the previous
// attempt's verdict and locking the gate. Every attempt still in flight is
// superseded from this point on.
func (s *service) beginAttempt() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attemptSeq++
	s.latestVerdict = nil
	s.revealed = false

	return s.attemptSeq
}
