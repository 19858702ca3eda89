package handler

import (
	"strconv"

	"vidnest-go/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的 :id 参数
func parseIDParam(c *gin.Context) (int64, error) {
	return parseInt64Param(c, "id")
}

func parseInt64Param(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parsePagination 解析分页参数
// 未提供时使用默认值；显式提供的非正整数视为非法参数
func parsePagination(c *gin.Context) (int, int, error) {
	page, err := parsePositiveQuery(c, "page")
	if err != nil {
		return 0, 0, err
	}
	limit, err := parsePositiveQuery(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	return pagination.Normalize(page, limit)
}

func parsePositiveQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, pagination.ErrInvalidParams
	}
	return v, nil
}
