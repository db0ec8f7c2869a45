package dto

import (
	"regexp"

	"github.com/thanarat-p/eventbook/internal/domain"
)

// emailRegex matches the accepted email syntax (simplified RFC 5322)
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// passwordSpecials is the fixed punctuation set accepted in passwords
const passwordSpecials = "@$!%*?&"

// SignupRequest represents a signup request
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateEmail validates the email format
func (r *SignupRequest) ValidateEmail() error {
	if !emailRegex.MatchString(r.Email) {
		return domain.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword validates password strength:
// at least 8 characters drawn from letters, digits and the fixed
// punctuation set, with at least one lowercase letter, one uppercase
// letter, one digit and one punctuation character.
func (r *SignupRequest) ValidatePassword() error {
	if len(r.Password) < 8 {
		return domain.ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range r.Password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case containsRune(passwordSpecials, c):
			hasSpecial = true
		default:
			// Character outside the accepted alphabet
			return domain.ErrWeakPassword
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return domain.ErrWeakPassword
	}

	return nil
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents the minimal profile returned on signup
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignupResponse represents the signup response body
type SignupResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
