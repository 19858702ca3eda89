package handler

import (
	"errors"
	"strings"

	"vidnest-go/internal/api/middleware"
	"vidnest-go/internal/api/response"
	"vidnest-go/internal/service"
	"vidnest-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Feed GET /api/v1/videos/feed
func (h *VideoHandler) Feed(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		response.BadRequest(c, "分页参数无效")
		return
	}

	var search *string
	if keyword := strings.TrimSpace(c.Query("search")); keyword != "" {
		search = &keyword
	}

	data, err := h.videoService.ListFeed(page, limit, search)
	if err != nil {
		logger.Error("List video feed failed", zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	response.OK(c, "获取视频列表成功", data)
}

// Detail GET /api/v1/videos/:id
func (h *VideoHandler) Detail(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	viewerID := middleware.GetViewerID(c)

	info, err := h.videoService.GetDetail(videoID, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get video detail failed", zap.Int64("video_id", videoID), zap.Error(err))
		response.InternalError(c, "获取视频详情失败")
		return
	}

	response.OK(c, "获取视频详情成功", info)
}

// MyVideos GET /api/v1/videos/my/list
// 返回当前用户的全部视频，含未发布
func (h *VideoHandler) MyVideos(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		response.BadRequest(c, "分页参数无效")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	data, err := h.videoService.ListByOwner(userID, page, limit)
	if err != nil {
		logger.Error("List my videos failed", zap.Int64("user_id", userID), zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	response.OK(c, "获取视频列表成功", data)
}
