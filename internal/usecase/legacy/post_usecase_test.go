package legacy_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/usecase"
	"github.com/mikiasgoitom/Commune/internal/usecase/legacy"
)

// scriptedPosts returns canned results and records the arguments it got.
type scriptedPosts struct {
	posts []entity.CommunityPost
	post  *entity.CommunityPost
	err   error
	calls []string
	args  []interface{}
}

func (s *scriptedPosts) record(name string, args ...interface{}) {
	s.calls = append(s.calls, name)
	s.args = args
}

func (s *scriptedPosts) GetCommunityPosts(ctx context.Context, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	s.record("GetCommunityPosts", page, pageSize)
	return s.posts, 42, page, 5, s.err
}

func (s *scriptedPosts) GetCommunityPostsByUser(ctx context.Context, userID string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	s.record("GetCommunityPostsByUser", userID, page, pageSize)
	return s.posts, 7, page, 1, s.err
}

func (s *scriptedPosts) CreateCommunityPost(ctx context.Context, authorID, title, content, category string, imageURLs []string) (*entity.CommunityPost, error) {
	s.record("CreateCommunityPost", authorID, title, content, category, imageURLs)
	return s.post, s.err
}

func (s *scriptedPosts) DeleteCommunityPost(ctx context.Context, postID, userID string, isAdmin bool) error {
	s.record("DeleteCommunityPost", postID, userID, isAdmin)
	return s.err
}

func (s *scriptedPosts) GetCommunityPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error) {
	s.record("GetCommunityPostByID", postID)
	return s.post, s.err
}

func (s *scriptedPosts) GetCommunityPostsByFilterOption(ctx context.Context, option entity.PostFilterOption, category string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	s.record("GetCommunityPostsByFilterOption", option, category, page, pageSize)
	return s.posts, 3, page, 1, s.err
}

func TestPostUsecase_ForwardsEveryCall(t *testing.T) {
	ctx := context.Background()
	post := &entity.CommunityPost{ID: "p1", AuthorID: "a", Content: "c", CreatedAt: time.Now()}
	errs := []error{nil, contract.ErrPostNotFound, usecase.ErrForbidden, errors.New("store down")}

	for _, wantErr := range errs {
		community := &scriptedPosts{posts: []entity.CommunityPost{*post}, post: post, err: wantErr}
		p := legacy.NewPostUsecase(community)

		posts, total, page, pages, err := p.GetPosts(ctx, 2, 20)
		assert.Equal(t, community.posts, posts)
		assert.Equal(t, []int{42, 2, 5}, []int{total, page, pages})
		assert.Equal(t, wantErr, err)
		assert.Equal(t, []interface{}{2, 20}, community.args)

		posts, total, _, _, err = p.GetPostsByUser(ctx, "a", 1, 10)
		assert.Equal(t, community.posts, posts)
		assert.Equal(t, 7, total)
		assert.Equal(t, wantErr, err)
		assert.Equal(t, []interface{}{"a", 1, 10}, community.args)

		created, err := p.CreatePost(ctx, "a", "t", "c", "news", []string{"u"})
		assert.Same(t, post, created)
		assert.Equal(t, wantErr, err)
		assert.Equal(t, []interface{}{"a", "t", "c", "news", []string{"u"}}, community.args)

		err = p.DeletePost(ctx, "p1", "a", true)
		assert.Equal(t, wantErr, err)
		assert.Equal(t, []interface{}{"p1", "a", true}, community.args)

		got, err := p.GetPostByID(ctx, "p1")
		assert.Same(t, post, got)
		assert.Equal(t, wantErr, err)

		_, total, _, _, err = p.GetPostsByFilterOption(ctx, entity.PostFilterOldest, "news", 3, 15)
		assert.Equal(t, 3, total)
		assert.Equal(t, wantErr, err)
		assert.Equal(t, []interface{}{entity.PostFilterOldest, "news", 3, 15}, community.args)

		assert.Equal(t, []string{
			"GetCommunityPosts",
			"GetCommunityPostsByUser",
			"CreateCommunityPost",
			"DeleteCommunityPost",
			"GetCommunityPostByID",
			"GetCommunityPostsByFilterOption",
		}, community.calls)
	}
}
