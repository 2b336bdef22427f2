package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// AdminHandler serves the moderation screens mounted under /admin.
type AdminHandler struct {
	postUsecase usecasecontract.ICommunityPostUseCase
}

func NewAdminHandler(postUsecase usecasecontract.ICommunityPostUseCase) *AdminHandler {
	return &AdminHandler{postUsecase: postUsecase}
}

func (h *AdminHandler) ListPostsHandler(c *gin.Context) {
	var q dto.FilterPostsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	posts, total, current, pages, err := h.postUsecase.GetCommunityPostsByFilterOption(c.Request.Context(), entity.PostFilterOption(q.Option), q.Category, q.Page, q.PageSize)
	respondPostPage(c, posts, total, current, pages, err)
}

// DeletePostHandler removes any post regardless of its author.
func (h *AdminHandler) DeletePostHandler(c *gin.Context) {
	adminID, _, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	if err := h.postUsecase.DeleteCommunityPost(c.Request.Context(), c.Param("postID"), adminID, true); err != nil {
		postErrorHandler(c, err, "Failed to delete post")
		return
	}
	MessageHandler(c, http.StatusOK, "Post removed")
}
