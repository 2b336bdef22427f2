package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	"github.com/mikiasgoitom/Commune/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Commune/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds the JSON body and writes a 400 on failure.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// BindQuery binds query parameters and writes a 400 on failure.
func BindQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// currentUser returns the caller set by the auth middleware.
func currentUser(c *gin.Context) (userID string, isAdmin bool, ok bool) {
	idAny, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return "", false, false
	}
	userID, ok = idAny.(string)
	if !ok || userID == "" {
		return "", false, false
	}
	role, _ := c.Get(middleware.ContextUserRole)
	r, _ := role.(entity.UserRole)
	return userID, r == entity.UserRoleAdmin, true
}

// postErrorHandler maps use case errors to HTTP statuses. fallback is the
// message used for unexpected failures; their detail is attached to the
// gin context for the request logger instead of being returned.
func postErrorHandler(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, contract.ErrPostNotFound):
		ErrorHandler(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, usecase.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "You are not allowed to modify this post")
	case errors.Is(err, usecase.ErrInvalidFilterOption), errors.Is(err, usecase.ErrInvalidInput):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrUnauthenticated):
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
	default:
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, fallback)
	}
}
