package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// LikeRepository keeps likes in Postgres. The composite unique index on
// (user_id, post_id) comes from the entity's gorm tags.
type LikeRepository struct {
	db *gorm.DB
}

var _ contract.ILikeRepository = (*LikeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) CreateLike(ctx context.Context, like *entity.Like) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(like).Error
	if err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *LikeRepository) DeleteLike(ctx context.Context, userID, postID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&entity.Like{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete like: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrLikeNotFound
	}
	return nil
}

func (r *LikeRepository) GetLikeByUserAndPost(ctx context.Context, userID, postID string) (*entity.Like, error) {
	var like entity.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.ErrLikeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve like: %w", err)
	}
	return &like, nil
}

func (r *LikeRepository) CountLikesByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
