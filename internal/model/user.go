package model

// User 用户模型
type User struct {
	ID       int64   `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName string  `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"user_name"`
	FullName string  `gorm:"size:255;comment:用户昵称" json:"full_name"`
	Password string  `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	Avatar   *string `gorm:"size:500;comment:用户头像" json:"avatar"`
	IsDelete int64   `gorm:"not null;default:0;comment:删除标识" json:"-"`

	// 关联关系
	Videos    []Video    `gorm:"foreignKey:OwnerID" json:"videos,omitempty"`
	Playlists []Playlist `gorm:"foreignKey:OwnerID" json:"playlists,omitempty"`
	Comments  []Comment  `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

func (User) TableName() string {
	return "users"
}
