package model

import "time"

// Video 视频模型
type Video struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	OwnerID     int64     `gorm:"not null;index:idx_videos_owner_id;index:idx_composite_owner_published;comment:视频作者ID" json:"owner_id"`
	Title       string    `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description string    `gorm:"type:text;comment:视频描述" json:"description"`
	PlayURL     string    `gorm:"size:500;comment:视频播放地址" json:"play_url"`
	CoverURL    string    `gorm:"size:500;comment:视频封面地址" json:"cover_url"`
	Duration    int       `gorm:"default:0;comment:视频时长（秒）" json:"duration"`
	IsPublished bool      `gorm:"not null;default:false;index:idx_composite_owner_published;comment:是否已发布" json:"is_published"`
	ViewCount   int64     `gorm:"default:0;comment:播放量" json:"view_count"` // 只增不减
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner    User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
