package dto

import "time"

// PostRowDTO 查询侧的帖子投影，字段与入库快照一一对应
type PostRowDTO struct {
	InstagramID    string    `json:"instagram_id"`
	Caption        string    `json:"caption"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	MediaType      string    `json:"media_type"`
	Timestamp      time.Time `json:"timestamp"`
	Engagement     int       `json:"engagement"`
	TotalFollowers int       `json:"total_followers"`
}
