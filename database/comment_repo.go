package database

import (
	"gorm.io/gorm"

	"github.com/khaledev/inkwell/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByPost returns all comments on a post, with their authors.
func (r *CommentRepo) FindByPost(postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("Author").Where("post_id = ?", postID).Find(&comments).Error
	return comments, err
}

// CountByPost returns the number of comments on a post.
func (r *CommentRepo) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// Add inserts a new comment into the database.
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}
