package repository

import (
	"vidnest-go/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(userID, commentID int64) (*model.Like, error) {
	like := &model.Like{UserID: userID, CommentID: commentID}
	if err := r.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

func (r *LikeRepository) Delete(userID, commentID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) Exists(userID, commentID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).Count(&count).Error
	return count > 0, err
}

// DeleteByComment 删除某条评论的全部点赞（级联清理，可重复执行）
func (r *LikeRepository) DeleteByComment(commentID int64) (int64, error) {
	result := r.db.Where("comment_id = ?", commentID).Delete(&model.Like{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByComment 统计评论的点赞数
func (r *LikeRepository) CountByComment(commentID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

// CountByComments 批量统计点赞数，未出现的评论计 0
func (r *LikeRepository) CountByComments(commentIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		CommentID int64
		Count     int64
	}
	err := r.db.Model(&model.Like{}).
		Select("comment_id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.CommentID] = row.Count
	}
	return result, nil
}

// LikedCommentIDs 批量查询用户点赞过的评论集合
func (r *LikeRepository) LikedCommentIDs(userID int64, commentIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	var likedIDs []int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &likedIDs).Error
	if err != nil {
		return nil, err
	}

	for _, id := range likedIDs {
		result[id] = true
	}
	return result, nil
}
