package password_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"madison/shared/password"
)

func TestDefaultCost(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{name: "valid password", password: "reception2024!"},
		{name: "short password", password: "abc"},
		{name: "unicode password", password: "motdepasseçâé"},
		{name: "empty password", password: "", expectedErr: password.ErrEmptyPassword},
		{name: "over bcrypt length limit", password: strings.Repeat("a", 100), expectedErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}

				if hash != "" {
					t.Errorf("expected empty hash on error, got %s", hash)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !strings.HasPrefix(hash, "$2") {
				t.Errorf("expected a bcrypt hash, got %s", hash)
			}

			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("expected the hash to verify its own password, got %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := password.Hash("reception2024!")
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{name: "matching password", password: "reception2024!", hash: validHash},
		{name: "wrong password", password: "direction2024!", hash: validHash, expectedErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: validHash, expectedErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "reception2024!", hash: "", expectedErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "reception2024!", hash: "not-a-hash", expectedErr: password.ErrVerifyingPassword},
		{name: "truncated hash", password: "reception2024!", hash: validHash[:10], expectedErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("reception2024!")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	second, err := password.Hash("reception2024!")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	if first == second {
		t.Error("expected salted hashes to differ for the same password")
	}

	if err := password.Verify("reception2024!", first); err != nil {
		t.Errorf("first hash failed to verify: %v", err)
	}

	if err := password.Verify("reception2024!", second); err != nil {
		t.Errorf("second hash failed to verify: %v", err)
	}
}
