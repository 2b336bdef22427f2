package http_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	handler "github.com/mikiasgoitom/Commune/internal/handler/http"
	mocks "github.com/mikiasgoitom/Commune/internal/handler/http/mocks"
)

func setupInteractionRouter(uc *mocks.MockLikeUsecase) *gin.Engine {
	h := handler.NewInteractionHandler(uc)
	r := gin.New()
	r.GET("/likes/is-liked", h.IsLikedHandler)
	r.GET("/likes/status", h.LikeStatusHandler)
	r.GET("/community-posts/:postID/likes/count", h.LikeCountHandler)
	r.POST("/community-posts/:postID/like", asUser("user-1", entity.UserRoleUser), h.ToggleLikeHandler)
	r.POST("/anonymous/:postID/like", h.ToggleLikeHandler)
	return r
}

func TestIsLikedHandler(t *testing.T) {
	uc := mocks.NewMockLikeUsecase()
	r := setupInteractionRouter(uc)

	w := doJSON(r, http.MethodGet, "/likes/is-liked?postId=post-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"post_id":"post-1","liked":false}`, w.Body.String())

	uc.Liked = true
	w = doJSON(r, http.MethodGet, "/likes/is-liked?postId=post-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"post_id":"post-1","liked":true}`, w.Body.String())
}

func TestIsLikedHandler_MissingPostID(t *testing.T) {
	w := doJSON(setupInteractionRouter(mocks.NewMockLikeUsecase()), http.MethodGet, "/likes/is-liked", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeStatusHandler(t *testing.T) {
	tests := []struct {
		name       string
		status     entity.LikeStatus
		err        error
		wantStatus int
		wantBody   string
	}{
		{"liked", entity.LikeStatusLiked, nil, http.StatusOK, `{"post_id":"p","status":"liked"}`},
		{"not liked", entity.LikeStatusNotLiked, nil, http.StatusOK, `{"post_id":"p","status":"not_liked"}`},
		{"anonymous", entity.LikeStatusUnauthenticated, nil, http.StatusOK, `{"post_id":"p","status":"unauthenticated"}`},
		{"lookup failed", entity.LikeStatusError, errors.New("db down"), http.StatusInternalServerError, `{"post_id":"p","status":"error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockLikeUsecase()
			uc.Status, uc.StatusErr = tt.status, tt.err

			w := doJSON(setupInteractionRouter(uc), http.MethodGet, "/likes/status?postId=p", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestToggleLikeHandler(t *testing.T) {
	uc := mocks.NewMockLikeUsecase()
	r := setupInteractionRouter(uc)

	w := doJSON(r, http.MethodPost, "/community-posts/post-1/like", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"post_id":"post-1","liked":true}`, w.Body.String())
	assert.Equal(t, "user-1", uc.LastUserID)

	w = doJSON(r, http.MethodPost, "/community-posts/post-1/like", nil)
	assert.JSONEq(t, `{"post_id":"post-1","liked":false}`, w.Body.String())
}

func TestToggleLikeHandler_Unauthenticated(t *testing.T) {
	w := doJSON(setupInteractionRouter(mocks.NewMockLikeUsecase()), http.MethodPost, "/anonymous/post-1/like", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLikeCountHandler(t *testing.T) {
	uc := mocks.NewMockLikeUsecase()
	uc.LikeCount = 42
	r := setupInteractionRouter(uc)

	w := doJSON(r, http.MethodGet, "/community-posts/post-1/likes/count", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"post_id":"post-1","count":42}`, w.Body.String())

	uc.ShouldFailCount = true
	w = doJSON(r, http.MethodGet, "/community-posts/post-1/likes/count", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
