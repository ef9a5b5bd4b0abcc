package models

// Comment represents a reader comment attached to a blog post.
type Comment struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Text     string `json:"text" db:"text" gorm:"type:text;not null"`
	AuthorID uint   `json:"authorId" db:"author_id" gorm:"not null;index:idx_comment_author_id"`
	PostID   uint   `json:"postId" db:"post_id" gorm:"not null;index:idx_comment_post_id"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}
