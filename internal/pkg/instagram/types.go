package instagram

import "time"

// Graph API 返回的时间格式带无冒号时区，例如 2025-08-12T09:30:00+0000
const timeLayout = "2006-01-02T15:04:05-0700"

// Media Graph API /media 接口返回的单条帖子
type Media struct {
	ID            string  `json:"id"`
	Caption       string  `json:"caption"`
	LikeCount     int     `json:"like_count"`
	CommentsCount int     `json:"comments_count"`
	MediaType     string  `json:"media_type"`
	MediaURL      string  `json:"media_url"`
	Permalink     string  `json:"permalink"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	Timestamp     string  `json:"timestamp"`
}

// TakenAt 解析帖子的原始发布时间
func (m Media) TakenAt() (time.Time, error) {
	t, err := time.Parse(timeLayout, m.Timestamp)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, m.Timestamp)
}

type mediaListResponse struct {
	Data []Media `json:"data"`
}

type accountResponse struct {
	FollowersCount int `json:"followers_count"`
}
