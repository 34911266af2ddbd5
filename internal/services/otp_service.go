package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/justsurfingit/jobjournal/internal/otpstore"
	"golang.org/x/crypto/bcrypt"
)

// OtpService runs the one-time-code half of the password reset flow:
// NoOtp -> Issued -> (Validated | Expired). Validation consumes the record,
// so a code works at most once.
type OtpService struct {
	Store otpstore.Store
	TTL   time.Duration

	// injected clock so expiry is testable
	Now func() time.Time
}

func NewOtpService(store otpstore.Store, ttl time.Duration) *OtpService {
	return &OtpService{
		Store: store,
		TTL:   ttl,
		Now:   time.Now,
	}
}

// Generate issues a fresh 6-digit code for the email, replacing any live
// one. Only a bcrypt hash is stored; the plaintext code is returned to the
// caller so the handler can mail it, and must never reach a response body.
// No check that the email belongs to an account happens here, so the
// endpoint does not disclose which emails are registered.
func (s *OtpService) Generate(email string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
	if err != nil {
		return "", err
	}
	s.Store.Put(email, otpstore.Entry{
		CodeHash:  string(hash),
		ExpiresAt: s.Now().Add(s.TTL),
	})
	return code, nil
}

// Validate checks the submitted code. Expired records are deleted lazily
// here; a mismatch keeps the record alive so the user can retry; a match
// deletes it (single use).
func (s *OtpService) Validate(email, code string) error {
	entry, ok := s.Store.Get(email)
	if !ok {
		return ErrNoActiveOtp
	}
	if s.Now().After(entry.ExpiresAt) {
		s.Store.Delete(email)
		return ErrOtpExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(entry.CodeHash), []byte(code)) != nil {
		return ErrOtpMismatch
	}
	s.Store.Delete(email)
	return nil
}

// randomCode draws a uniform 6-digit code from crypto/rand.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
