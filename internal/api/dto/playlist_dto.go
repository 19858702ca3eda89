package dto

import "time"

// PlaylistCreateRequest 创建播放列表请求
type PlaylistCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// PlaylistUpdateRequest 更新播放列表请求
type PlaylistUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// PlaylistView 播放列表详情视图（已联结视频与创建者）
type PlaylistView struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	OwnerID     int64       `json:"owner_id"`
	Owner       *UserBrief  `json:"owner,omitempty"`
	Videos      []VideoInfo `json:"videos"`
	TotalVideos int         `json:"total_videos"`
	TotalViews  int64       `json:"total_views"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PlaylistSummary 用户主页的播放列表摘要
type PlaylistSummary struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	TotalVideos     int       `json:"total_videos"`
	TotalViews      int64     `json:"total_views"`
	FirstVideoCover *string   `json:"first_video_cover"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PlaylistListData 播放列表摘要列表
type PlaylistListData struct {
	Playlists []PlaylistSummary `json:"playlists"`
}
