package repository

import (
	"vidnest-go/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner 根据 ID 获取视频（含作者信息）
func (r *VideoRepository) GetByIDWithOwner(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDs 批量获取视频，未命中的 ID 不报错、直接缺席
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Where("id IN ?", ids).Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// GetByIDsWithOwner 批量获取视频（含作者信息）
func (r *VideoRepository) GetByIDsWithOwner(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// ListPublished 已发布视频列表（分页）
func (r *VideoRepository) ListPublished(skip, limit int, search *string) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{}).Where("is_published = ?", true)

	if search != nil && *search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?", "%"+*search+"%", "%"+*search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// ListByOwner 获取用户的视频列表（含未发布，分页）
func (r *VideoRepository) ListByOwner(ownerID int64, skip, limit int) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// IncrementViewCount 观看数 +1（原子自增，播放量只增不减）
func (r *VideoRepository) IncrementViewCount(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
