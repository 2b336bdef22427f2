package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/database"
)

// LikeRepository is the MongoDB implementation of contract.ILikeRepository.
type LikeRepository struct {
	collection *mongo.Collection
}

var _ contract.ILikeRepository = (*LikeRepository)(nil)

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{collection: db.Collection(database.LikesCollection)}
}

// CreateLike upserts on (user_id, post_id) so a repeated like keeps the
// original document. like.ID and like.CreatedAt are only written on insert.
func (r *LikeRepository) CreateLike(ctx context.Context, like *entity.Like) error {
	filter := bson.M{"user_id": like.UserID, "post_id": like.PostID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        like.ID,
			"created_at": like.CreatedAt,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// two concurrent upserts can race on the unique index; the like exists either way
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *LikeRepository) DeleteLike(ctx context.Context, userID, postID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "post_id": postID})
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrLikeNotFound
	}
	return nil
}

func (r *LikeRepository) GetLikeByUserAndPost(ctx context.Context, userID, postID string) (*entity.Like, error) {
	var like entity.Like
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "post_id": postID}).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrLikeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve like: %w", err)
	}
	return &like, nil
}

func (r *LikeRepository) CountLikesByPostID(ctx context.Context, postID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
