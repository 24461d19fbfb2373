package model

import (
	"time"
)

// Post Instagram 帖子在采集时刻的快照，首次写入后不再更新
type Post struct {
	ID             uint64    `gorm:"primaryKey"`
	InstagramID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_instagram_id" json:"instagram_id"`
	Caption        string    `gorm:"type:text" json:"caption"`
	Likes          int       `gorm:"not null;default:0" json:"likes"`
	Comments       int       `gorm:"not null;default:0" json:"comments"`
	MediaType      string    `gorm:"type:varchar(32);not null" json:"media_type"`
	MediaURL       string    `gorm:"type:varchar(2048)" json:"media_url"`
	Permalink      string    `gorm:"type:varchar(2048)" json:"permalink"`
	ThumbnailURL   *string   `gorm:"type:varchar(2048)" json:"thumbnail_url"`
	TakenAt        time.Time `gorm:"not null;index:idx_taken_at" json:"taken_at"`
	Engagement     int       `gorm:"not null;default:0" json:"engagement"`
	TotalFollowers int       `gorm:"not null;default:0" json:"total_followers"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "instagram_posts"
}
