package model

import "time"

// Like 评论点赞模型
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_comment_like;index:idx_likes_user_id;comment:点赞用户ID" json:"user_id"`
	CommentID int64     `gorm:"not null;uniqueIndex:uq_user_comment_like;index:idx_likes_comment_id;comment:被点赞评论ID" json:"comment_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`

	// 关联关系
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}
