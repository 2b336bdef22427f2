package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/database"
)

// CommunityPostRepository stores community posts in MongoDB.
type CommunityPostRepository struct {
	collection *mongo.Collection
}

var _ contract.ICommunityPostRepository = (*CommunityPostRepository)(nil)

func NewCommunityPostRepository(db *mongo.Database) *CommunityPostRepository {
	return &CommunityPostRepository{collection: db.Collection(database.PostsCollection)}
}

func (r *CommunityPostRepository) CreatePost(ctx context.Context, post *entity.CommunityPost) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to insert community post: %w", err)
	}
	return nil
}

func (r *CommunityPostRepository) GetPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	err := r.collection.FindOne(ctx, bson.M{"_id": postID, "is_deleted": false}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve community post: %w", err)
	}
	return &post, nil
}

// GetPosts returns one page of non-deleted posts and the total number of matches.
func (r *CommunityPostRepository) GetPosts(ctx context.Context, opts *contract.PostFilterOptions) ([]*entity.CommunityPost, int64, error) {
	filter, sort := buildPostFilterAndSort(opts)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count community posts: %w", err)
	}

	findOpts := options.Find().
		SetSort(sort).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize))

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find community posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.CommunityPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode community posts: %w", err)
	}
	return posts, total, nil
}

func (r *CommunityPostRepository) SoftDeletePost(ctx context.Context, postID string) error {
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID, "is_deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to delete community post: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}

// SetLikeCount overwrites the denormalised like counter used for sorting.
func (r *CommunityPostRepository) SetLikeCount(ctx context.Context, postID string, count int64) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": bson.M{"like_count": count}})
	if err != nil {
		return fmt.Errorf("failed to update like count: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}

// buildPostFilterAndSort turns filter options into a Mongo query. Deleted
// posts are always excluded and ties are broken by _id for stable paging.
func buildPostFilterAndSort(opts *contract.PostFilterOptions) (bson.M, bson.D) {
	filter := bson.M{"is_deleted": false}
	if opts.AuthorID != nil && *opts.AuthorID != "" {
		filter["author_id"] = *opts.AuthorID
	}
	if opts.Category != nil && *opts.Category != "" {
		filter["category"] = *opts.Category
	}

	sortBy := "created_at"
	if opts.SortBy == "like_count" {
		sortBy = "like_count"
	}
	order := -1
	if opts.SortOrder == "asc" {
		order = 1
	}
	return filter, bson.D{{Key: sortBy, Value: order}, {Key: "_id", Value: order}}
}
