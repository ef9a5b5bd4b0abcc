package models

// BlogPost represents a published article with its metadata.
//
// Date is the publication date as a pre-formatted display string
// ("January 2, 2006"), not a timestamp. It is only ever shown, never sorted.
type BlogPost struct {
	ID         uint    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	AuthorID   uint    `json:"authorId" db:"author_id" gorm:"not null;index:idx_blog_post_author_id"`
	Title      string  `json:"title" db:"title" gorm:"type:text;not null;unique"`
	Subtitle   string  `json:"subtitle" db:"subtitle" gorm:"type:text;not null"`
	Date       string  `json:"date" db:"date" gorm:"type:text;not null"`
	Body       string  `json:"body" db:"body" gorm:"type:text;not null"`
	ImgURL     string  `json:"imgUrl" db:"img_url" gorm:"type:text;not null"`
	ProjectURL *string `json:"projectUrl,omitempty" db:"project_url" gorm:"type:text"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}
