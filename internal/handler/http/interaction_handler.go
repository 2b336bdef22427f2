package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

type InteractionHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewInteractionHandler(likeUsecase usecasecontract.ILikeUseCase) *InteractionHandler {
	return &InteractionHandler{likeUsecase: likeUsecase}
}

// ToggleLikeHandler likes the post, or unlikes it when the caller already did.
func (h *InteractionHandler) ToggleLikeHandler(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	postID := c.Param("postID")

	liked, err := h.likeUsecase.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		postErrorHandler(c, err, "Failed to update like")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleLikeResponse{PostID: postID, Liked: liked})
}

func (h *InteractionHandler) LikeCountHandler(c *gin.Context) {
	postID := c.Param("postID")
	count, err := h.likeUsecase.GetLikeCount(c.Request.Context(), postID)
	if err != nil {
		postErrorHandler(c, err, "Failed to count likes")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LikeCountResponse{PostID: postID, Count: count})
}

// IsLikedHandler answers with a plain boolean. Anonymous callers, rejected
// sessions and lookup failures all get liked=false with a 200.
func (h *InteractionHandler) IsLikedHandler(c *gin.Context) {
	postID := c.Query("postId")
	if postID == "" {
		ErrorHandler(c, http.StatusBadRequest, "postId is required")
		return
	}
	liked := h.likeUsecase.IsLiked(c.Request.Context(), postID)
	SuccessHandler(c, http.StatusOK, dto.IsLikedResponse{PostID: postID, Liked: liked})
}

// LikeStatusHandler is the detailed variant of IsLikedHandler that reports
// why a post is not liked and surfaces lookup failures.
func (h *InteractionHandler) LikeStatusHandler(c *gin.Context) {
	postID := c.Query("postId")
	if postID == "" {
		ErrorHandler(c, http.StatusBadRequest, "postId is required")
		return
	}
	status, err := h.likeUsecase.LikeStatus(c.Request.Context(), postID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.LikeStatusResponse{PostID: postID, Status: string(entity.LikeStatusError)})
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LikeStatusResponse{PostID: postID, Status: string(status)})
}
