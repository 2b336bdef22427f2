package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

type PostCacheStore struct {
	rdb          *redis.Client
	detailTTL    time.Duration
	likeCountTTL time.Duration
}

var _ contract.IPostCache = (*PostCacheStore)(nil)

func NewPostCacheStore(rdb *redis.Client) *PostCacheStore {
	return &PostCacheStore{
		rdb:          rdb,
		detailTTL:    30 * time.Minute,
		likeCountTTL: 10 * time.Minute,
	}
}

func postKey(postID string) string      { return fmt.Sprintf("community:post:%s", postID) }
func likeCountKey(postID string) string { return fmt.Sprintf("community:post:%s:likes", postID) }

func (c *PostCacheStore) GetPost(ctx context.Context, postID string) (*entity.CommunityPost, bool, error) {
	b, err := c.rdb.Get(ctx, postKey(postID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var post entity.CommunityPost
	if err := json.Unmarshal(b, &post); err != nil {
		// a corrupt entry is a miss; the next SetPost overwrites it
		return nil, false, nil
	}
	return &post, true, nil
}

func (c *PostCacheStore) SetPost(ctx context.Context, post *entity.CommunityPost) error {
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, postKey(post.ID), data, c.detailTTL).Err()
}

func (c *PostCacheStore) InvalidatePost(ctx context.Context, postID string) error {
	return c.rdb.Del(ctx, postKey(postID)).Err()
}

func (c *PostCacheStore) GetLikeCount(ctx context.Context, postID string) (int64, bool, error) {
	n, err := c.rdb.Get(ctx, likeCountKey(postID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return n, true, nil
}

func (c *PostCacheStore) SetLikeCount(ctx context.Context, postID string, count int64) error {
	return c.rdb.Set(ctx, likeCountKey(postID), count, c.likeCountTTL).Err()
}
