package dto

import "vidnest-go/pkg/pagination"

// SearchVideoRequest 视频搜索请求
type SearchVideoRequest struct {
	Keyword string `form:"q" binding:"required,min=1,max=100"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

// SearchVideoData 视频搜索结果
type SearchVideoData struct {
	Videos []VideoInfo `json:"videos"`
	pagination.Meta
}
