package handler

import (
	"errors"

	"vidnest-go/internal/api/middleware"
	"vidnest-go/internal/api/response"
	"vidnest-go/internal/service"
	"vidnest-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleCommentLike POST /api/v1/comments/:id/like
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.ToggleCommentLike(userID, commentID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Toggle comment like failed",
			zap.Int64("comment_id", commentID),
			zap.Int64("user_id", userID),
			zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
		return
	}

	msg := "取消点赞成功"
	if data.Liked {
		msg = "点赞成功"
	}
	response.OK(c, msg, data)
}
