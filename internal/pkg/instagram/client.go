package instagram

import (
	"Instalens/internal/api/config"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client Instagram Graph API 访问接口
type Client interface {
	FetchMedia(ctx context.Context) ([]Media, error)
	FetchFollowersCount(ctx context.Context) (int, error)
}

type clientImpl struct {
	http        *resty.Client
	userID      string
	accessToken string
}

func NewClient(cfg *config.InstagramConfig) Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	return &clientImpl{
		http:        client,
		userID:      cfg.UserID,
		accessToken: cfg.AccessToken,
	}
}

const mediaFields = "id,caption,like_count,comments_count,media_type,media_url,permalink,thumbnail_url,timestamp"

// FetchMedia 拉取账号最近发布的帖子列表
func (s *clientImpl) FetchMedia(ctx context.Context) ([]Media, error) {
	var result mediaListResponse

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("fields", mediaFields).
		SetQueryParam("access_token", s.accessToken).
		SetResult(&result).
		Get("/" + s.userID + "/media")
	if err != nil {
		return nil, errors.Wrap(err, "instagram media request failed")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("instagram media fetch failed: %s", resp.Status())
	}

	return result.Data, nil
}

// FetchFollowersCount 拉取账号当前粉丝数
func (s *clientImpl) FetchFollowersCount(ctx context.Context) (int, error) {
	var result accountResponse

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("fields", "followers_count").
		SetQueryParam("access_token", s.accessToken).
		SetResult(&result).
		Get("/" + s.userID)
	if err != nil {
		return 0, errors.Wrap(err, "instagram followers request failed")
	}
	if !resp.IsSuccess() {
		return 0, errors.Errorf("instagram followers fetch failed: %s", resp.Status())
	}

	return result.FollowersCount, nil
}
