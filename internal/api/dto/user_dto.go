package dto

// UserBrief 嵌入其他视图的用户投影
// 只暴露这三个字段，密码等敏感字段永不投影
type UserBrief struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Avatar   *string `json:"avatar"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Avatar   *string `json:"avatar"`
}
