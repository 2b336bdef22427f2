package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// CommunityPostHandlerInterface defines the methods for the community post handler to allow interface-based dependency injection (for testing/mocking)
type CommunityPostHandlerInterface interface {
	CreateCommunityPostHandler(*gin.Context)
	GetCommunityPostsHandler(*gin.Context)
	GetCommunityPostsByUserHandler(*gin.Context)
	GetCommunityPostHandler(*gin.Context)
	DeleteCommunityPostHandler(*gin.Context)
	FilterCommunityPostsHandler(*gin.Context)
}

var _ CommunityPostHandlerInterface = (*CommunityPostHandler)(nil)

type CommunityPostHandler struct {
	postUsecase usecasecontract.ICommunityPostUseCase
}

func NewCommunityPostHandler(postUsecase usecasecontract.ICommunityPostUseCase) *CommunityPostHandler {
	return &CommunityPostHandler{postUsecase: postUsecase}
}

// CreateCommunityPostHandler
func (h *CommunityPostHandler) CreateCommunityPostHandler(c *gin.Context) {
	authorID, _, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUsecase.CreateCommunityPost(c.Request.Context(), authorID, req.Title, req.Content, req.Category, req.ImageURLs)
	if err != nil {
		postErrorHandler(c, err, "Failed to create post")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToPostResponse(post))
}

// GetCommunityPostsHandler
func (h *CommunityPostHandler) GetCommunityPostsHandler(c *gin.Context) {
	var q dto.ListPostsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	posts, total, current, pages, err := h.postUsecase.GetCommunityPosts(c.Request.Context(), q.Page, q.PageSize)
	respondPostPage(c, posts, total, current, pages, err)
}

// GetCommunityPostsByUserHandler
func (h *CommunityPostHandler) GetCommunityPostsByUserHandler(c *gin.Context) {
	var q dto.ListPostsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	posts, total, current, pages, err := h.postUsecase.GetCommunityPostsByUser(c.Request.Context(), c.Param("userID"), q.Page, q.PageSize)
	respondPostPage(c, posts, total, current, pages, err)
}

// GetCommunityPostHandler
func (h *CommunityPostHandler) GetCommunityPostHandler(c *gin.Context) {
	post, err := h.postUsecase.GetCommunityPostByID(c.Request.Context(), c.Param("postID"))
	if err != nil {
		postErrorHandler(c, err, "Failed to get post")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPostResponse(post))
}

// DeleteCommunityPostHandler
func (h *CommunityPostHandler) DeleteCommunityPostHandler(c *gin.Context) {
	userID, isAdmin, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	if err := h.postUsecase.DeleteCommunityPost(c.Request.Context(), c.Param("postID"), userID, isAdmin); err != nil {
		postErrorHandler(c, err, "Failed to delete post")
		return
	}
	c.Status(http.StatusNoContent)
}

// FilterCommunityPostsHandler
func (h *CommunityPostHandler) FilterCommunityPostsHandler(c *gin.Context) {
	var q dto.FilterPostsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	posts, total, current, pages, err := h.postUsecase.GetCommunityPostsByFilterOption(c.Request.Context(), entity.PostFilterOption(q.Option), q.Category, q.Page, q.PageSize)
	respondPostPage(c, posts, total, current, pages, err)
}

func respondPostPage(c *gin.Context, posts []entity.CommunityPost, total, current, pages int, err error) {
	if err != nil {
		postErrorHandler(c, err, "Failed to get posts")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPaginatedPostResponse(posts, total, current, pages))
}
