package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/dto"
	"github.com/thanarat-p/eventbook/internal/middleware"
	"github.com/thanarat-p/eventbook/internal/service"
	"github.com/thanarat-p/eventbook/pkg/logger"
	"github.com/thanarat-p/eventbook/pkg/response"
	"go.uber.org/zap"
)

const passwordPolicyMessage = "Password must be at least 8 characters long, with an uppercase letter, a number, and a special character."

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService  service.AuthService
	eventService service.EventService
	log          *logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, eventService service.EventService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		eventService: eventService,
		log:          log,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	// Validation errors surface from the service; a bind failure just
	// leaves fields empty and fails the email check the same way.
	_ = c.ShouldBindJSON(&req)

	resp, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			response.BadRequest(c, "Invalid email format.")
		case errors.Is(err, domain.ErrEmailInUse):
			response.BadRequest(c, "Email already in use.")
		case errors.Is(err, domain.ErrWeakPassword):
			response.BadRequest(c, passwordPolicyMessage)
		default:
			h.log.Error("signup failed", zap.Error(err))
			response.InternalError(c, "Something went wrong. Please try again later.", nil)
		}
		return
	}

	response.Created(c, "User created successfully. You are now logged in.", gin.H{
		"token": resp.Token,
		"user":  resp.User,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			response.BadRequest(c, "User not found. Check your email address.")
		case errors.Is(err, domain.ErrInvalidPassword):
			response.BadRequest(c, "Invalid password. Please try again.")
		default:
			h.log.Error("login failed", zap.Error(err))
			response.InternalError(c, "Something went wrong. Please try again later.", nil)
		}
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token":  resp.Token,
		"userId": resp.UserID,
	})
}

// UserEvents handles GET /api/auth/userevents
func (h *AuthHandler) UserEvents(c *gin.Context) {
	userID := middleware.UserID(c)
	p := dto.ParsePagination(c.Query("page"), c.Query("limit"))

	list, err := h.eventService.ListUserUpcoming(c.Request.Context(), userID, p)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		h.log.Error("user events listing failed", zap.String("user_id", userID), zap.Error(err))
		response.InternalError(c, "Error fetching user events", err)
		return
	}

	response.OK(c, "User upcoming events fetched successfully", gin.H{
		"total":  list.Total,
		"page":   list.Page,
		"limit":  list.Limit,
		"events": list.Events,
	})
}
