package dto

import (
	"time"

	"vidnest-go/pkg/pagination"
)

// VideoInfo 视频详情
type VideoInfo struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PlayURL     string     `json:"play_url"`
	CoverURL    string     `json:"cover_url"`
	Duration    int        `json:"duration"`
	IsPublished bool       `json:"is_published"`
	ViewCount   int64      `json:"view_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Owner       *UserBrief `json:"owner,omitempty"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos []VideoInfo `json:"videos"`
	pagination.Meta
}
