package service

import "vidnest-go/internal/model"

// IsVideoVisible 判断视频对访问者是否可见
// 已发布视频对所有人可见；未发布视频仅当访问者就是所在上下文的所有者时可见
func IsVideoVisible(video *model.Video, viewerID, contextOwnerID int64) bool {
	if video.IsPublished {
		return true
	}
	return viewerID != 0 && viewerID == contextOwnerID
}
