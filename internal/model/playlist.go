package model

import "time"

// Playlist 播放列表模型
// OwnerID 创建时写入，之后不再变更
type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:播放列表ID" json:"id"`
	Name        string    `gorm:"size:200;not null;comment:播放列表名称" json:"name"`
	Description string    `gorm:"type:text;comment:播放列表描述" json:"description"`
	OwnerID     int64     `gorm:"not null;index:idx_playlists_owner_id;comment:创建者ID" json:"owner_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Items []PlaylistVideo `gorm:"foreignKey:PlaylistID" json:"items,omitempty"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 播放列表与视频的成员关系
// 唯一索引保证集合语义，自增 ID 保留加入顺序
type PlaylistVideo struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:成员记录ID" json:"id"`
	PlaylistID int64     `gorm:"not null;uniqueIndex:uq_playlist_video;index:idx_playlist_videos_playlist_id;comment:播放列表ID" json:"playlist_id"`
	VideoID    int64     `gorm:"not null;uniqueIndex:uq_playlist_video;comment:视频ID" json:"video_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:加入时间" json:"created_at"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
