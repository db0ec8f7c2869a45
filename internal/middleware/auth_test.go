package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/dto"
)

// mockAuthService validates a single known token
type mockAuthService struct {
	validToken string
	userID     string
}

func (m *mockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return nil, nil
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	if token == m.validToken {
		return &domain.Claims{UserID: m.userID}, nil
	}
	return nil, domain.ErrInvalidToken
}

func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(&mockAuthService{validToken: "good-token", userID: "user-1"}))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": UserID(c)})
	})
	return router
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name            string
		authorization   string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "valid bearer token",
			authorization:  "Bearer good-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:            "missing header",
			authorization:   "",
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Access denied",
		},
		{
			name:            "invalid token",
			authorization:   "Bearer bad-token",
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Invalid token",
		},
		{
			name:            "header without token part",
			authorization:   "good-token",
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Access denied",
		},
		{
			name:            "empty token part",
			authorization:   "Bearer ",
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Access denied",
		},
		{
			name:            "wrong scheme with bad token",
			authorization:   "Basic bad-token",
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Invalid token",
		},
	}

	router := setupAuthTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Auth status = %v, want %v", w.Code, tt.expectedStatus)
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}

			if tt.expectedStatus == http.StatusOK {
				if resp["userID"] != "user-1" {
					t.Errorf("Auth userID = %v, want user-1", resp["userID"])
				}
			} else if resp["message"] != tt.expectedMessage {
				t.Errorf("Auth message = %v, want %v", resp["message"], tt.expectedMessage)
			}
		})
	}
}
