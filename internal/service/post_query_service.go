package service

import (
	"Instalens/internal/api/dto"
	"Instalens/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type PostQueryService interface {
	// FetchRecent 按发布时间倒序返回最近入库的帖子投影
	FetchRecent(ctx context.Context) ([]*dto.PostRowDTO, error)
}

type postQueryServiceImpl struct {
	postRepo    repository.PostRepo
	recentLimit int
}

// NewPostQueryService recentLimit 为 0 时返回全部
func NewPostQueryService(postRepo repository.PostRepo, recentLimit int) PostQueryService {
	return &postQueryServiceImpl{
		postRepo:    postRepo,
		recentLimit: recentLimit,
	}
}

// FetchRecent 空库返回空切片，不使用哨兵值
func (s *postQueryServiceImpl) FetchRecent(ctx context.Context) ([]*dto.PostRowDTO, error) {
	posts, err := s.postRepo.GetRecentPosts(ctx, s.recentLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.PostRowDTO, 0, len(posts))
	for _, post := range posts {
		item := &dto.PostRowDTO{}
		_ = copier.Copy(item, post)
		item.Timestamp = post.TakenAt
		rows = append(rows, item)
	}
	return rows, nil
}
