package dto

import (
	"time"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// CreatePostRequest is shared by the community and the legacy create endpoints.
type CreatePostRequest struct {
	Title     string   `json:"title" binding:"max=200"`
	Content   string   `json:"content" binding:"required,max=10000"`
	Category  string   `json:"category" binding:"omitempty,max=50"`
	ImageURLs []string `json:"image_urls" binding:"omitempty,max=10,dive,url"`
}

// ListPostsQuery carries the pagination query parameters.
type ListPostsQuery struct {
	Page     int `form:"page,default=1" binding:"min=0"`
	PageSize int `form:"pageSize,default=10" binding:"min=0"`
}

// FilterPostsQuery carries the query of the filtered feed.
type FilterPostsQuery struct {
	ListPostsQuery
	Option   string `form:"option" binding:"postfilter"`
	Category string `form:"category"`
}

type PostResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	ImageURLs []string  `json:"image_urls"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaginatedPostResponse defines the structure for a paginated list of posts.
type PaginatedPostResponse struct {
	Posts       []PostResponse `json:"posts"`
	TotalCount  int            `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
}

func ToPostResponse(post *entity.CommunityPost) PostResponse {
	images := post.ImageURLs
	if images == nil {
		images = []string{}
	}
	return PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		Category:  post.Category,
		ImageURLs: images,
		LikeCount: post.LikeCount,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func ToPaginatedPostResponse(posts []entity.CommunityPost, total, current, pages int) PaginatedPostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, ToPostResponse(&posts[i]))
	}
	return PaginatedPostResponse{Posts: out, TotalCount: total, CurrentPage: current, TotalPages: pages}
}

type ToggleLikeResponse struct {
	PostID string `json:"post_id"`
	Liked  bool   `json:"liked"`
}

type IsLikedResponse struct {
	PostID string `json:"post_id"`
	Liked  bool   `json:"liked"`
}

type LikeStatusResponse struct {
	PostID string `json:"post_id"`
	Status string `json:"status"`
}

type LikeCountResponse struct {
	PostID string `json:"post_id"`
	Count  int64  `json:"count"`
}
