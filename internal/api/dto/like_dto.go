package dto

// LikeStatusData 点赞状态数据
type LikeStatusData struct {
	CommentID  int64 `json:"comment_id"`
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
