package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	"github.com/mikiasgoitom/Commune/internal/usecase/legacy"
)

// LegacyPostHandler serves the /posts routes used by older mobile builds.
// Requests and responses have the same shape as the community post routes.
type LegacyPostHandler struct {
	posts legacy.IPostUseCase
}

func NewLegacyPostHandler(posts legacy.IPostUseCase) *LegacyPostHandler {
	return &LegacyPostHandler{posts: posts}
}

func (h *LegacyPostHandler) GetPostsHandler(c *gin.Context) {
	var q dto.ListPostsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	posts, total, current, pages, err := h.posts.GetPosts(c.Request.Context(), q.Page, q.PageSize)
	respondPostPage(c, posts, total, current, pages, err)
}

func (h *LegacyPostHandler) GetPostsByUserHandler(c *gin.Context) {
	var q dto.ListPostsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	posts, total, current, pages, err := h.posts.GetPostsByUser(c.Request.Context(), c.Param("userID"), q.Page, q.PageSize)
	respondPostPage(c, posts, total, current, pages, err)
}

func (h *LegacyPostHandler) CreatePostHandler(c *gin.Context) {
	authorID, _, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.posts.CreatePost(c.Request.Context(), authorID, req.Title, req.Content, req.Category, req.ImageURLs)
	if err != nil {
		postErrorHandler(c, err, "Failed to create post")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToPostResponse(post))
}

func (h *LegacyPostHandler) DeletePostHandler(c *gin.Context) {
	userID, isAdmin, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	if err := h.posts.DeletePost(c.Request.Context(), c.Param("postID"), userID, isAdmin); err != nil {
		postErrorHandler(c, err, "Failed to delete post")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LegacyPostHandler) GetPostHandler(c *gin.Context) {
	post, err := h.posts.GetPostByID(c.Request.Context(), c.Param("postID"))
	if err != nil {
		postErrorHandler(c, err, "Failed to get post")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPostResponse(post))
}

func (h *LegacyPostHandler) FilterPostsHandler(c *gin.Context) {
	var q dto.FilterPostsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	posts, total, current, pages, err := h.posts.GetPostsByFilterOption(c.Request.Context(), entity.PostFilterOption(q.Option), q.Category, q.Page, q.PageSize)
	respondPostPage(c, posts, total, current, pages, err)
}
