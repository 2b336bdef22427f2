package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	"github.com/mikiasgoitom/Commune/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	GetUser(*gin.Context)
	GetCurrentUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserExists):
			ErrorHandler(c, http.StatusConflict, err.Error())
		case errors.Is(err, usecase.ErrInvalidInput):
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		default:
			_ = c.Error(err)
			ErrorHandler(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, err := h.userUsecase.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	})
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to get user")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
