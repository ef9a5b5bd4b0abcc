package database

import (
	"gorm.io/gorm"

	"github.com/khaledev/inkwell/models"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// FindAll returns all contact messages, newest first.
func (r *MessageRepo) FindAll() ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// Add inserts a new contact message into the database.
func (r *MessageRepo) Add(message *models.Message) error {
	return r.db.Create(message).Error
}
