package handler

import (
	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/api/response"
	"vidnest-go/internal/service"
	"vidnest-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchVideos GET /api/v1/search/videos?q=xxx
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	var req dto.SearchVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	page, limit, err := parsePagination(c)
	if err != nil {
		response.BadRequest(c, "分页参数无效")
		return
	}

	data, err := h.searchService.SearchVideos(&req, page, limit)
	if err != nil {
		logger.Error("Search videos failed", zap.String("keyword", req.Keyword), zap.Error(err))
		response.InternalError(c, "搜索失败，请稍后重试")
		return
	}

	response.OK(c, "搜索成功", data)
}
