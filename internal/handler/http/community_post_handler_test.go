package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	handler "github.com/mikiasgoitom/Commune/internal/handler/http"
	dto "github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/Commune/internal/handler/http/mocks"
)

func setupPostRouter(h handler.CommunityPostHandlerInterface, userID string, role entity.UserRole) *gin.Engine {
	r := gin.New()
	r.GET("/community-posts", h.GetCommunityPostsHandler)
	r.GET("/community-posts/filter", h.FilterCommunityPostsHandler)
	r.GET("/community-posts/:postID", h.GetCommunityPostHandler)
	r.GET("/users/:userID/community-posts", h.GetCommunityPostsByUserHandler)
	authed := r.Group("/", asUser(userID, role))
	authed.POST("/community-posts", h.CreateCommunityPostHandler)
	authed.DELETE("/community-posts/:postID", h.DeleteCommunityPostHandler)
	return r
}

func TestGetCommunityPosts(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodGet, "/community-posts?page=2&pageSize=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PaginatedPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Posts, 2)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 5, uc.LastPageSize)
	assert.Equal(t, []string{}, resp.Posts[1].ImageURLs)
}

func TestGetCommunityPosts_DefaultsAndBadQuery(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodGet, "/community-posts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, uc.LastPage)
	assert.Equal(t, 10, uc.LastPageSize)

	w = doJSON(r, http.MethodGet, "/community-posts?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCommunityPosts_Fail(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	uc.ShouldFailList = true
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodGet, "/community-posts", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to get posts")
	assert.NotContains(t, w.Body.String(), "list failed")
}

func TestFilterCommunityPosts(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodGet, "/community-posts/filter?option=most_liked&category=Garden", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.PostFilterMostLiked, uc.LastOption)
	assert.Equal(t, "Garden", uc.LastCategory)

	w = doJSON(r, http.MethodGet, "/community-posts/filter?option=random", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCommunityPostsByUser(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodGet, "/users/author-9/community-posts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "author-9", uc.LastUserID)
}

func TestGetCommunityPost(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodGet, "/community-posts/post-7", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"post-7"`)

	uc.PostNotFound = true
	w = doJSON(r, http.MethodGet, "/community-posts/post-7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCommunityPost(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodPost, "/community-posts", dto.CreatePostRequest{
		Title:     "Tomatoes",
		Content:   "They are growing",
		Category:  "garden",
		ImageURLs: []string{"https://cdn.example.com/a.jpg"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-1", uc.LastUserID)
	assert.Contains(t, w.Body.String(), `"author_id":"user-1"`)
}

func TestCreateCommunityPost_Invalid(t *testing.T) {
	uc := mocks.NewMockCommunityPostUsecase()
	r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", entity.UserRoleUser)

	w := doJSON(r, http.MethodPost, "/community-posts", dto.CreatePostRequest{Title: "no content"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/community-posts", dto.CreatePostRequest{Content: "x", ImageURLs: []string{"not a url"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uc.LastMethod)
}

func TestDeleteCommunityPost(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.UserRole
		forbid     bool
		notFound   bool
		wantStatus int
	}{
		{"author", entity.UserRoleUser, false, false, http.StatusNoContent},
		{"not the author", entity.UserRoleUser, true, false, http.StatusForbidden},
		{"admin overrides", entity.UserRoleAdmin, true, false, http.StatusNoContent},
		{"missing post", entity.UserRoleUser, false, true, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockCommunityPostUsecase()
			uc.ForbidDelete, uc.PostNotFound = tt.forbid, tt.notFound
			r := setupPostRouter(handler.NewCommunityPostHandler(uc), "user-1", tt.role)

			w := doJSON(r, http.MethodDelete, "/community-posts/post-1", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.role == entity.UserRoleAdmin, uc.LastIsAdmin)
		})
	}
}
