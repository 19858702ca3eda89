package pagination

import "errors"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrInvalidParams = errors.New("分页参数必须为正整数")

// Meta 分页元信息，所有列表接口共用
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Normalize 规整分页参数
// 0 表示调用方未显式提供，使用默认值；显式的负值视为非法参数
// limit 超过上限时收敛到 MaxLimit
func Normalize(page, limit int) (int, int, error) {
	if page < 0 || limit < 0 {
		return 0, 0, ErrInvalidParams
	}
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit, nil
}

// Offset 返回偏移量，供仓储层的 Offset/Limit 查询使用
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewMeta 根据总数计算分页元信息
func NewMeta(page, limit int, total int64) Meta {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}
