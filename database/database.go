package database

import (
	"gorm.io/gorm"

	"github.com/khaledev/inkwell/models"
)

type Database struct {
	userRepo    *UserRepo
	postRepo    *PostRepo
	commentRepo *CommentRepo
	messageRepo *MessageRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		postRepo:    NewPostRepo(db),
		commentRepo: NewCommentRepo(db),
		messageRepo: NewMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

// Migrate creates or updates the four application tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.Comment{},
		&models.Message{},
	)
}
