package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/userhive/usersvc/internal/domain"
	"github.com/userhive/usersvc/internal/metrics"
	"github.com/userhive/usersvc/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.CreateUserInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	userUsecase userUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, userUsecase userUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		userUsecase: userUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// POST /auth/register
// Same validation and duplicate rules as user creation; responds with a
// fresh token alongside the created user.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, signed, err := h.authUsecase.Register(ctx.Request.Context(), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errValidation, "errors": vErr.Fields})
		case errors.Is(err, domain.ErrDuplicateEmail):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errDuplicateEmail})
		default:
			h.logger.Error("register", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusCreated, authResponse{Token: signed, User: toUserResponse(user)})
}

// POST /auth/login
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, signed, err := h.authUsecase.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
			return
		}
		h.logger.Error("login", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	ctx.JSON(http.StatusOK, authResponse{Token: signed, User: toUserResponse(user)})
}

// GET /auth/me
// Runs behind the Auth middleware, which stores the token subject as
// "userID" in the gin context.
func (h *AuthHandler) Me(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	user, err := h.userUsecase.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidUserID) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
			return
		}
		h.logger.Error("get current user", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	ctx.JSON(http.StatusOK, toUserResponse(user))
}
