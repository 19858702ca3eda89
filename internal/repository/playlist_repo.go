package repository

import (
	"vidnest-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(playlist *model.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *PlaylistRepository) GetByID(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.First(&playlist, id).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetByIDWithItems 根据 ID 获取播放列表（含成员记录，按加入顺序）
func (r *PlaylistRepository) GetByIDWithItems(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("playlist_videos.id ASC")
	}).First(&playlist, id).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListByOwnerWithItems 获取用户创建的全部播放列表（含成员记录）
func (r *PlaylistRepository) ListByOwnerWithItems(ownerID int64) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("playlist_videos.id ASC")
	}).Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

// Update 更新播放列表字段
func (r *PlaylistRepository) Update(id int64, updates map[string]interface{}) error {
	result := r.db.Model(&model.Playlist{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除播放列表，成员记录随之删除
func (r *PlaylistRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Playlist{}, id).Error
	})
}

// AddVideo 添加视频到播放列表
// 依赖唯一索引 + ON CONFLICT DO NOTHING 实现原子的集合添加，重复添加为无操作
func (r *PlaylistRepository) AddVideo(playlistID, videoID int64) error {
	item := &model.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(item).Error
}

// RemoveVideo 从播放列表移除视频，视频不在列表中时为无操作
func (r *PlaylistRepository) RemoveVideo(playlistID, videoID int64) error {
	return r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{}).Error
}
