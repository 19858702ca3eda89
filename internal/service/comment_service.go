package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/config"
	infraKafka "vidnest-go/internal/infra/kafka"
	"vidnest-go/internal/model"
	"vidnest-go/internal/repository"
	"vidnest-go/pkg/logger"
	"vidnest-go/pkg/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommentNoPermission = errors.New("没有权限操作该评论")
	ErrCommentEmptyContent = errors.New("评论内容不能为空")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, videoRepo *repository.VideoRepository, likeRepo *repository.LikeRepository, userRepo *repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo, likeRepo: likeRepo, userRepo: userRepo}
}

// Create 发表评论
func (s *CommentService) Create(userID, videoID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrCommentEmptyContent
	}

	comment := &model.Comment{
		UserID:  userID,
		VideoID: videoID,
		Content: content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	info := toCommentInfo(comment, 0, false)
	if user, err := s.userRepo.GetByID(userID); err == nil {
		info.Owner = toUserBrief(user)
	}
	return info, nil
}

// Update 更新评论（仅作者本人）
func (s *CommentService) Update(commentID, userID int64, req *dto.CommentUpdateRequest) (*dto.CommentInfo, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrCommentEmptyContent
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrCommentNoPermission
	}

	if err := s.commentRepo.UpdateContent(commentID, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	comment.Content = content
	likesCount, _ := s.likeRepo.CountByComment(commentID)
	isLiked, _ := s.likeRepo.Exists(userID, commentID)

	info := toCommentInfo(comment, likesCount, isLiked)
	if user, err := s.userRepo.GetByID(comment.UserID); err == nil {
		info.Owner = toUserBrief(user)
	}
	return info, nil
}

// Delete 删除评论（仅作者本人）并级联清理点赞
// 级联不与主删除同事务：失败只留下孤儿点赞，由 worker 消费删除事件兜底重放，
// 孤儿点赞因评论已不可达而永远不会被联结回任何视图
func (s *CommentService) Delete(commentID, userID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrCommentNoPermission
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	// 级联删除全部点赞，不区分点赞者
	if _, err := s.likeRepo.DeleteByComment(commentID); err != nil {
		logger.Warn("Like cascade failed, relying on sweep worker",
			zap.Int64("comment_id", commentID),
			zap.Error(err),
		)
	}

	s.publishCommentDeleted(comment, userID)

	return nil
}

// ListByVideo 获取视频评论页（created_at 降序，id 兜底，联结作者与点赞聚合）
func (s *CommentService) ListByVideo(videoID, viewerID int64, page, limit int) (*dto.CommentListData, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	skip := pagination.Offset(page, limit)
	comments, total, err := s.commentRepo.ListByVideo(videoID, skip, limit)
	if err != nil {
		return nil, err
	}

	commentIDs := make([]int64, 0, len(comments))
	for i := range comments {
		commentIDs = append(commentIDs, comments[i].ID)
	}

	likeCounts, err := s.likeRepo.CountByComments(commentIDs)
	if err != nil {
		return nil, err
	}

	likedSet := map[int64]bool{}
	if viewerID != 0 {
		likedSet, err = s.likeRepo.LikedCommentIDs(viewerID, commentIDs)
		if err != nil {
			return nil, err
		}
	}

	return buildCommentPage(comments, likeCounts, likedSet, page, limit, total), nil
}

func (s *CommentService) publishCommentDeleted(comment *model.Comment, deletedBy int64) {
	topic := config.GetKafka().Topics["comment_deleted"]
	if topic == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := &infraKafka.CommentDeletedEvent{
		CommentID: comment.ID,
		VideoID:   comment.VideoID,
		DeletedBy: deletedBy,
		DeletedAt: time.Now().Unix(),
	}
	if err := infraKafka.SendCommentDeleted(ctx, topic, event); err != nil {
		logger.Warn("Failed to publish comment deleted event",
			zap.Int64("comment_id", comment.ID),
			zap.Error(err),
		)
	}
}

// buildCommentPage 组合评论页
// is_liked 表示访问者是否点赞过该评论，匿名访客恒为 false
func buildCommentPage(comments []model.Comment, likeCounts map[int64]int64, likedSet map[int64]bool, page, limit int, total int64) *dto.CommentListData {
	items := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		info := toCommentInfo(&comments[i], likeCounts[comments[i].ID], likedSet[comments[i].ID])
		if comments[i].User.ID != 0 {
			info.Owner = toUserBrief(&comments[i].User)
		}
		items = append(items, *info)
	}

	return &dto.CommentListData{
		Comments: items,
		Meta:     pagination.NewMeta(page, limit, total),
	}
}

func toCommentInfo(c *model.Comment, likesCount int64, isLiked bool) *dto.CommentInfo {
	return &dto.CommentInfo{
		ID:         c.ID,
		VideoID:    c.VideoID,
		Content:    c.Content,
		LikesCount: likesCount,
		IsLiked:    isLiked,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
