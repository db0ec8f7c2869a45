package service

import (
	"context"
	"testing"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(userRepo *mockUserRepository) AuthService {
	return NewAuthService(userRepo, &AuthServiceConfig{
		JWTSecret:  "test-secret-key",
		TokenTTL:   7 * 24 * time.Hour,
		Issuer:     "eventbook-test",
		BcryptCost: bcrypt.MinCost, // Lower cost for faster tests
	})
}

func TestAuthService_Signup(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := newTestAuthService(userRepo)

	t.Run("successful signup", func(t *testing.T) {
		req := &dto.SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "Password1!",
		}

		resp, err := svc.Signup(context.Background(), req)
		if err != nil {
			t.Fatalf("Signup() error = %v", err)
		}

		if resp.Token == "" {
			t.Error("Signup() Token is empty")
		}
		if resp.User.Username != req.Username {
			t.Errorf("Signup() User.Username = %v, want %v", resp.User.Username, req.Username)
		}
		if resp.User.Email != req.Email {
			t.Errorf("Signup() User.Email = %v, want %v", resp.User.Email, req.Email)
		}

		stored := userRepo.emailIndex[req.Email]
		if stored == nil {
			t.Fatal("Signup() user not persisted")
		}
		if stored.PasswordHash == req.Password {
			t.Error("Signup() stored the password in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(req.Password)); err != nil {
			t.Errorf("Signup() stored hash does not match password: %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := &dto.SignupRequest{
			Username: "alice2",
			Email:    "alice@example.com", // Same email as previous test
			Password: "Password2!",
		}

		_, err := svc.Signup(context.Background(), req)
		if err != domain.ErrEmailInUse {
			t.Errorf("Signup() error = %v, want %v", err, domain.ErrEmailInUse)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		req := &dto.SignupRequest{
			Username: "bob",
			Email:    "not-an-email",
			Password: "Password1!",
		}

		_, err := svc.Signup(context.Background(), req)
		if err != domain.ErrInvalidEmail {
			t.Errorf("Signup() error = %v, want %v", err, domain.ErrInvalidEmail)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		req := &dto.SignupRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "password", // No upper case, digit, or special
		}

		_, err := svc.Signup(context.Background(), req)
		if err != domain.ErrWeakPassword {
			t.Errorf("Signup() error = %v, want %v", err, domain.ErrWeakPassword)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := newTestAuthService(userRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	testUser := &domain.User{
		ID:           "test-user-id",
		Username:     "carol",
		Email:        "carol@example.com",
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	userRepo.users[testUser.ID] = testUser
	userRepo.emailIndex[testUser.Email] = testUser

	t.Run("successful login", func(t *testing.T) {
		req := &dto.LoginRequest{
			Email:    "carol@example.com",
			Password: "Password1!",
		}

		resp, err := svc.Login(context.Background(), req)
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if resp.Token == "" {
			t.Error("Login() Token is empty")
		}
		if resp.UserID != testUser.ID {
			t.Errorf("Login() UserID = %v, want %v", resp.UserID, testUser.ID)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		req := &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "Password1!",
		}

		_, err := svc.Login(context.Background(), req)
		if err != domain.ErrUserNotFound {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrUserNotFound)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := &dto.LoginRequest{
			Email:    "carol@example.com",
			Password: "WrongPassword1!",
		}

		_, err := svc.Login(context.Background(), req)
		if err != domain.ErrInvalidPassword {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidPassword)
		}
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := newTestAuthService(userRepo)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	userID := userRepo.emailIndex["dave@example.com"].ID

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateToken(context.Background(), resp.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("ValidateToken() UserID = %v, want %v", claims.UserID, userID)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Errorf("ValidateToken() ExpiresAt = %v, want in the future", claims.ExpiresAt)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), resp.Token+"x")
		if err != domain.ErrInvalidToken {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthService(userRepo, &AuthServiceConfig{
			JWTSecret:  "another-secret",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		})
		otherResp, err := other.Login(context.Background(), &dto.LoginRequest{
			Email:    "dave@example.com",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		_, err = svc.ValidateToken(context.Background(), otherResp.Token)
		if err != domain.ErrInvalidToken {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not.a.token")
		if err != domain.ErrInvalidToken {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})
}
