// Package otp holds pending one-time passcodes in process memory, keyed by
// email. Codes are single-use: a successful verification consumes the code.
// Reissuing for the same email overwrites the previous code. Nothing here is
// persisted; a restart clears all pending codes.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

var (
	// ErrNotFound means no live code exists for the email: never issued,
	// already consumed, or expired.
	ErrNotFound = errors.New("otp not found")
	// ErrMismatch means a live code exists but the submitted one differs.
	ErrMismatch = errors.New("otp mismatch")
)

type entry struct {
	code     string
	issuedAt time.Time
}

// Store is a keyed passcode store. The zero value is not usable; use New.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New creates a Store whose codes expire after ttl. A ttl of zero disables
// expiry.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Issue generates a fresh 6-digit code for email, replacing any prior
// pending code for that address, and returns it.
func (s *Store) Issue(email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.entries[email] = entry{code: code, issuedAt: s.now()}
	s.mu.Unlock()

	return code, nil
}

// Verify checks the submitted code against the stored one. On a match the
// code is deleted, so a second verification with the same code fails with
// ErrNotFound. Expired codes are treated as absent.
func (s *Store) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[email]
	if !ok {
		return ErrNotFound
	}
	if s.ttl > 0 && s.now().Sub(e.issuedAt) > s.ttl {
		delete(s.entries, email)
		return ErrNotFound
	}
	if e.code != code {
		return ErrMismatch
	}
	delete(s.entries, email)
	return nil
}

// generateCode draws a 6-digit code uniformly from [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
