package repository

import (
	"context"

	"gorm.io/gorm"

	"phorum/internal/model"
)

// ReplyRepository defines reply persistence operations.
type ReplyRepository interface {
	Create(ctx context.Context, reply *model.Reply) error
	ListByPost(ctx context.Context, postID uint) ([]model.Reply, error)
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository builds a GORM-backed repository.
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

// ListByPost returns the replies of a post in chronological conversation
// order. The id tiebreak keeps replies created within the same timestamp
// in insertion order, which places bot replies right after their trigger.
func (r *replyRepository) ListByPost(ctx context.Context, postID uint) ([]model.Reply, error) {
	var replies []model.Reply
	if err := r.db.WithContext(ctx).Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}
