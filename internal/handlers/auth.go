package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a user and returns a token for it.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email     string  `json:"email" binding:"required,email"`
		Password  string  `json:"password" binding:"required,min=6,max=72"`
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierrors.Validation(err))
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		_ = c.Error(authAPIError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Message: result.Message, Token: result.Token})
}

// Login authenticates a user and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierrors.Validation(err))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(authAPIError(err))
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: result.Message, Token: result.Token})
}

func authAPIError(err error) error {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		return apierrors.BadRequest(fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrPasswordTooLong):
		return apierrors.NewAPIErrorWithDetails(http.StatusBadRequest, apierrors.ErrCodeInvalidInput, "Validation error",
			[]apierrors.FieldError{{
				Field:   "password",
				Tag:     "max",
				Message: fmt.Sprintf("must be at most %d", constants.MaxPasswordLength),
			}})
	case errors.Is(err, services.ErrEmailTaken):
		return apierrors.NewAPIError(http.StatusBadRequest, apierrors.ErrCodeAlreadyExists, "Email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apierrors.NewAPIError(http.StatusBadRequest, apierrors.ErrCodeInvalidCredentials, "Invalid credentials")
	default:
		// Storage and unexpected failures are classified by ErrorHandler.
		return err
	}
}
