package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidnest-go/internal/api/dto"
	infraMinio "vidnest-go/internal/infra/minio"
	infraRedis "vidnest-go/internal/infra/redis"
	"vidnest-go/internal/model"
	"vidnest-go/internal/repository"
	"vidnest-go/pkg/logger"
	"vidnest-go/pkg/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrVideoNotFound = errors.New("视频不存在")

// 同一访问者在该窗口内重复播放只计一次
const viewDedupWindow = 6 * time.Hour

type VideoService struct {
	videoRepo *repository.VideoRepository
}

func NewVideoService(videoRepo *repository.VideoRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo}
}

// GetDetail 获取视频详情并计一次播放
// 未发布的视频仅作者本人可见，对其他人与"不存在"不可区分
func (s *VideoService) GetDetail(videoID, viewerID int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if !IsVideoVisible(video, viewerID, video.OwnerID) {
		return nil, ErrVideoNotFound
	}

	if s.shouldCountView(viewerID, videoID) {
		if err := s.videoRepo.IncrementViewCount(videoID); err != nil {
			logger.Warn("Failed to increment view count", zap.Int64("video_id", videoID), zap.Error(err))
		} else {
			video.ViewCount++
		}
	}

	return toVideoInfo(video, &video.Owner), nil
}

// ListFeed 已发布视频流（分页）
func (s *VideoService) ListFeed(page, limit int, search *string) (*dto.VideoListData, error) {
	skip := pagination.Offset(page, limit)
	videos, total, err := s.videoRepo.ListPublished(skip, limit, search)
	if err != nil {
		return nil, err
	}
	return buildVideoListData(videos, true, page, limit, total), nil
}

// ListByOwner 获取用户自己的视频列表（含未发布，分页）
func (s *VideoService) ListByOwner(ownerID int64, page, limit int) (*dto.VideoListData, error) {
	skip := pagination.Offset(page, limit)
	videos, total, err := s.videoRepo.ListByOwner(ownerID, skip, limit)
	if err != nil {
		return nil, err
	}
	return buildVideoListData(videos, false, page, limit, total), nil
}

// shouldCountView 播放去重
// Redis SETNX 保证窗口内同一访问者只计一次；匿名访客与 Redis 不可用时直接计数
func (s *VideoService) shouldCountView(viewerID, videoID int64) bool {
	if viewerID == 0 || infraRedis.Get() == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf("video:view:%d:%d", videoID, viewerID)
	ok, err := infraRedis.Get().SetNX(ctx, key, 1, viewDedupWindow).Result()
	if err != nil {
		logger.Warn("View dedup check failed", zap.String("key", key), zap.Error(err))
		return true
	}
	return ok
}

func buildVideoListData(videos []model.Video, withOwner bool, page, limit int, total int64) *dto.VideoListData {
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		var owner *model.User
		if withOwner && videos[i].Owner.ID != 0 {
			owner = &videos[i].Owner
		}
		items = append(items, *toVideoInfo(&videos[i], owner))
	}

	return &dto.VideoListData{
		Videos: items,
		Meta:   pagination.NewMeta(page, limit, total),
	}
}

func toVideoInfo(v *model.Video, owner *model.User) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Title:       v.Title,
		Description: v.Description,
		PlayURL:     resolveMediaURL(v.PlayURL),
		CoverURL:    resolveMediaURL(v.CoverURL),
		Duration:    v.Duration,
		IsPublished: v.IsPublished,
		ViewCount:   v.ViewCount,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if owner != nil {
		info.Owner = toUserBrief(owner)
	}
	return info
}

// resolveMediaURL 把对象键解析为预签名地址，失败时退回原值
func resolveMediaURL(object string) string {
	if object == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resolved, err := infraMinio.ResolveMediaURL(ctx, object)
	if err != nil {
		logger.Warn("Failed to resolve media url", zap.String("object", object), zap.Error(err))
		return object
	}
	return resolved
}
