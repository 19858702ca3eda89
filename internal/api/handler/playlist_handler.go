package handler

import (
	"errors"

	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/api/middleware"
	"vidnest-go/internal/api/response"
	"vidnest-go/internal/service"
	"vidnest-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create POST /api/v1/playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	view, err := h.playlistService.Create(userID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.Created(c, "创建播放列表成功", view)
}

// Update PUT /api/v1/playlists/:id
func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	var req dto.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	view, err := h.playlistService.Update(playlistID, userID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "更新播放列表成功", view)
}

// Delete DELETE /api/v1/playlists/:id
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.Delete(playlistID, userID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "删除播放列表成功", nil)
}

// AddVideo POST /api/v1/playlists/:id/videos/:video_id
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	videoID, err := parseInt64Param(c, "video_id")
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.AddVideo(playlistID, videoID, userID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "添加视频成功", nil)
}

// RemoveVideo DELETE /api/v1/playlists/:id/videos/:video_id
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	videoID, err := parseInt64Param(c, "video_id")
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.RemoveVideo(playlistID, videoID, userID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "移除视频成功", nil)
}

// GetByID GET /api/v1/playlists/:id
func (h *PlaylistHandler) GetByID(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	viewerID := middleware.GetViewerID(c)

	view, err := h.playlistService.GetByID(playlistID, viewerID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "获取播放列表成功", view)
}

// ListMyPlaylists GET /api/v1/playlists/my/list
func (h *PlaylistHandler) ListMyPlaylists(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	data, err := h.playlistService.ListByUser(userID)
	if err != nil {
		logger.Error("List my playlists failed", zap.Error(err))
		response.InternalError(c, "获取播放列表失败")
		return
	}

	response.OK(c, "获取播放列表成功", data)
}

// ListUserPlaylists GET /api/v1/users/:id/playlists
func (h *PlaylistHandler) ListUserPlaylists(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	data, err := h.playlistService.ListByUser(userID)
	if err != nil {
		logger.Error("List user playlists failed", zap.Int64("user_id", userID), zap.Error(err))
		response.InternalError(c, "获取播放列表失败")
		return
	}

	response.OK(c, "获取播放列表成功", data)
}

func handlePlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPlaylistNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrPlaylistEmptyName), errors.Is(err, service.ErrPlaylistEmptyUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Playlist operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
