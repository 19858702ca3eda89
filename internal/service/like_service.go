package service

import (
	"errors"

	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo    *repository.LikeRepository
	commentRepo *repository.CommentRepository
}

func NewLikeService(likeRepo *repository.LikeRepository, commentRepo *repository.CommentRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, commentRepo: commentRepo}
}

// ToggleCommentLike 点赞/取消点赞评论
func (s *LikeService) ToggleCommentLike(userID, commentID int64) (*dto.LikeStatusData, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	liked, err := s.likeRepo.Exists(userID, commentID)
	if err != nil {
		return nil, err
	}

	if liked {
		if _, err := s.likeRepo.Delete(userID, commentID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.likeRepo.Create(userID, commentID); err != nil {
			return nil, err
		}
	}

	count, err := s.likeRepo.CountByComment(commentID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeStatusData{
		CommentID:  commentID,
		Liked:      !liked,
		LikesCount: count,
	}, nil
}
