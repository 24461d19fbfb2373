package repository

import (
	"Instalens/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	ExistsByInstagramID(ctx context.Context, instagramID string) (bool, error)
	GetRecentPosts(ctx context.Context, limit int) ([]*model.Post, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s PostRepoImpl) ExistsByInstagramID(ctx context.Context, instagramID string) (bool, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Select("id").Where("instagram_id = ?", instagramID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetRecentPosts 按发布时间倒序返回帖子，limit 为 0 时不限制条数
func (s PostRepoImpl) GetRecentPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).Order("taken_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
