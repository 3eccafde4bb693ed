package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ReportID  uint      `gorm:"not null;index" json:"report_id"`
	Content   string    `gorm:"size:1000;not null" json:"content"`
	Likes     int       `gorm:"default:0" json:"likes"`
	IsActive  bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Report Report `gorm:"foreignKey:ReportID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_user_comment_like,unique" json:"user_id"`
	CommentID uint      `gorm:"not null;index:idx_user_comment_like,unique" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"-"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// CommentView is the JSON shape the frontend consumes. The author fields come
// from an explicit join against users, resolved at query time.
type CommentView struct {
	ID        uint   `json:"id"`
	Usuario   string `json:"usuario"`
	Contenido string `json:"contenido"`
	Fecha     string `json:"fecha"`
	EsAdmin   bool   `json:"esAdmin"`
	Likes     int    `json:"likes"`
	UserLiked bool   `json:"userLiked"`
}

// NewCommentView builds the view from a comment with its author loaded.
func NewCommentView(c *Comment, userLiked bool) CommentView {
	return CommentView{
		ID:        c.ID,
		Usuario:   c.User.Username,
		Contenido: c.Content,
		Fecha:     c.CreatedAt.UTC().Format(time.RFC3339),
		EsAdmin:   c.User.IsAdmin,
		Likes:     c.Likes,
		UserLiked: userLiked,
	}
}
