package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhive/usersvc/internal/domain"
	"github.com/userhive/usersvc/internal/usecase"
)

// userUsecaser is the subset of UserUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type userUsecaser interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input usecase.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

type UserHandler struct {
	userUsecase userUsecaser
	logger      *slog.Logger
}

func NewUserHandler(userUsecase userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger.With("component", "user_handler"),
	}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// userResponse is the outbound projection of a user. The password hash
// is excluded structurally, not by field filtering.
type userResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// GET /api/users
func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.userUsecase.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("list users", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	ctx.JSON(http.StatusOK, resp)
}

// GET /api/users/:id
func (h *UserHandler) GetByID(ctx *gin.Context) {
	userID := ctx.Param("id")

	user, err := h.userUsecase.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		h.respondError(ctx, err, "get user by id", "user_id", userID)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// POST /api/users
func (h *UserHandler) Create(ctx *gin.Context) {
	var req createUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Create(ctx.Request.Context(), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(ctx, err, "create user")
		return
	}
	ctx.JSON(http.StatusCreated, toUserResponse(user))
}

// PUT /api/users/:id
func (h *UserHandler) Update(ctx *gin.Context) {
	userID := ctx.Param("id")

	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Update(ctx.Request.Context(), userID, usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(ctx, err, "update user", "user_id", userID)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// DELETE /api/users/:id
func (h *UserHandler) Delete(ctx *gin.Context) {
	userID := ctx.Param("id")

	user, err := h.userUsecase.Delete(ctx.Request.Context(), userID)
	if err != nil {
		h.respondError(ctx, err, "delete user", "user_id", userID)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": msgUserDeleted,
		"user":    toUserResponse(user),
	})
}

// respondError translates usecase errors to the canonical status codes.
// Unexpected errors are logged with their cause and answered with the
// generic 500 body.
func (h *UserHandler) respondError(ctx *gin.Context, err error, msg string, args ...any) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errValidation, "errors": vErr.Fields})
	case errors.Is(err, domain.ErrInvalidUserID):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidUserID})
	case errors.Is(err, domain.ErrDuplicateEmail):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errDuplicateEmail})
	case errors.Is(err, domain.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
	default:
		h.logger.Error(msg, append(args, "error", err)...)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}
