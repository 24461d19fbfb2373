package service

import (
	"Instalens/internal/model"
	"Instalens/internal/pkg/instagram"
	"Instalens/internal/repository"
	"context"
	log "log/slog"
)

type IngestService interface {
	// Ingest 执行一轮采集，返回新入库的帖子数
	Ingest(ctx context.Context) (int, error)
}

type ingestServiceImpl struct {
	igClient instagram.Client
	postRepo repository.PostRepo
	weighted bool
}

func NewIngestService(igClient instagram.Client, postRepo repository.PostRepo, weighted bool) IngestService {
	return &ingestServiceImpl{
		igClient: igClient,
		postRepo: postRepo,
		weighted: weighted,
	}
}

// CalculateEngagement 互动分数计算，加权口径下评论权重为 2
func CalculateEngagement(likes, comments int, weighted bool) int {
	if weighted {
		return likes + 2*comments
	}
	return likes + comments
}

// Ingest 实现：粉丝数拉取失败按 0 计并继续，帖子列表拉取失败则放弃本轮。
// 批次内无事务，单条入库失败不回滚已入库的帖子。
func (s *ingestServiceImpl) Ingest(ctx context.Context) (int, error) {
	followers, err := s.igClient.FetchFollowersCount(ctx)
	if err != nil {
		log.WarnContext(ctx, "fetch followers count failed, fallback to 0", "err", err)
		followers = 0
	}

	mediaList, err := s.igClient.FetchMedia(ctx)
	if err != nil {
		log.ErrorContext(ctx, "fetch instagram media failed, skip this cycle", "err", err)
		return 0, err
	}

	stored := 0
	for _, media := range mediaList {
		exists, err := s.postRepo.ExistsByInstagramID(ctx, media.ID)
		if err != nil {
			log.ErrorContext(ctx, "check post existence failed", "instagram_id", media.ID, "err", err)
			continue
		}
		if exists {
			log.InfoContext(ctx, "post already exists, skipping", "instagram_id", media.ID)
			continue
		}

		takenAt, err := media.TakenAt()
		if err != nil {
			log.WarnContext(ctx, "unparsable media timestamp", "instagram_id", media.ID, "timestamp", media.Timestamp)
		}

		post := &model.Post{
			InstagramID:    media.ID,
			Caption:        media.Caption,
			Likes:          media.LikeCount,
			Comments:       media.CommentsCount,
			MediaType:      media.MediaType,
			MediaURL:       media.MediaURL,
			Permalink:      media.Permalink,
			ThumbnailURL:   media.ThumbnailURL,
			TakenAt:        takenAt,
			Engagement:     CalculateEngagement(media.LikeCount, media.CommentsCount, s.weighted),
			TotalFollowers: followers,
		}

		if err = s.postRepo.CreatePost(ctx, post); err != nil {
			log.ErrorContext(ctx, "store post failed", "instagram_id", media.ID, "err", err)
			continue
		}

		log.InfoContext(ctx, "successfully stored post", "instagram_id", media.ID, "engagement", post.Engagement)
		stored++
	}

	return stored, nil
}
