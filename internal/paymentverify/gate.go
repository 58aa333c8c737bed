package paymentverify

import (
	"context"
	"errors"
	"time"
)

// ErrGateLocked is returned when the secret is requested while the latest
// verification attempt has not produced a valid verdict. Requesting the
// secret in that state is a no-op; the guarded transition in Reveal is the
// only code path that discloses it.
var ErrGateLocked = errors.New("decrypt key is locked")

func (s *service) Reveal() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.revealed {
		return s.policy.SecretValue, nil
	}

	if s.latestVerdict == nil || !s.latestVerdict.Valid {
		return "", ErrGateLocked
	}

	s.revealed = true
	return s.policy.SecretValue, nil
}

func (s *service) Revealed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.revealed
}

func (s *service) CopySecret(ctx context.Context) error {
	s.mu.Lock()
	if !s.revealed {
		s.mu.Unlock()
		return ErrGateLocked
	}
	secret := s.policy.SecretValue
	s.mu.Unlock()

	// The clipboard write happens outside the lock; it is an external
	// collaborator and may be slow.
	if err := s.clipboard.WriteText(ctx, secret); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.copied = true
	s.copiedGen++
	gen := s.copiedGen

	// Replace, never stack: a rapid re-copy restarts the indicator window
	// instead of racing two timers against each other.
	if s.copiedTimer != nil {
		s.copiedTimer.Stop()
	}
	s.copiedTimer = time.AfterFunc(s.copiedDwell, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if gen == s.copiedGen {
			s.copied = false
			s.copiedTimer = nil
		}
	})

	return nil
}

func (s *service) Copied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copied
}
