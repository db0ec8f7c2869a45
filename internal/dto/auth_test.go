package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thanarat-p/eventbook/internal/domain"
)

func TestSignupRequest_ValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"valid email", "alice@example.com", nil},
		{"valid with plus tag", "alice+events@example.co.uk", nil},
		{"missing at sign", "alice.example.com", domain.ErrInvalidEmail},
		{"missing domain", "alice@", domain.ErrInvalidEmail},
		{"missing tld", "alice@example", domain.ErrInvalidEmail},
		{"empty", "", domain.ErrInvalidEmail},
		{"whitespace", "alice @example.com", domain.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SignupRequest{Email: tt.email}
			err := req.ValidateEmail()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSignupRequest_ValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "Passw0rd!", nil},
		{"all character classes", "aB3@aB3@", nil},
		{"too short", "aB3@x", domain.ErrWeakPassword},
		{"no uppercase", "passw0rd!", domain.ErrWeakPassword},
		{"no lowercase", "PASSW0RD!", domain.ErrWeakPassword},
		{"no digit", "Password!", domain.ErrWeakPassword},
		{"no punctuation", "Passw0rdX", domain.ErrWeakPassword},
		{"character outside alphabet", "Passw0rd! ", domain.ErrWeakPassword},
		{"empty", "", domain.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SignupRequest{Password: tt.password}
			err := req.ValidatePassword()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
