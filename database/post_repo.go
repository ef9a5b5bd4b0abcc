package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/khaledev/inkwell/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all blog posts with their authors.
func (r *PostRepo) FindAll() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Author").Find(&posts).Error
	return posts, err
}

// FindByID returns a post with its author and comments (each comment with its
// author), or nil if no such post exists.
func (r *PostRepo) FindByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.
		Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByTitle returns a post by its unique title, or nil if absent.
func (r *PostRepo) FindByTitle(title string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("title = ?", title).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database.
func (r *PostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update rewrites an existing blog post.
func (r *PostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a post and cascades to its comments in one transaction, so
// the store never holds comments pointing at a missing post even on drivers
// where the declared constraint is not enforced.
func (r *PostRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BlogPost{}, id).Error
	})
}
