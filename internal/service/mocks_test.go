package service

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// fakeHasher is a deterministic stand-in for bcrypt so service tests
// stay fast. The "hash" is reversible on purpose: tests assert that
// services never store or return plaintext.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return fmt.Errorf("password mismatch")
}

// fakeTokens hands out sequential tokens so tests can assert exactly
// which token was persisted.
type fakeTokens struct {
	counter int
}

func (f *fakeTokens) Generate() string {
	f.counter++
	return fmt.Sprintf("token-%d", f.counter)
}

// testLogger returns a logger whose output is discarded.
func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}
