package models

import "time"

// Message represents a note submitted through the public contact form.
// It has no relation to the other entities.
type Message struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone     *string   `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Body      string    `json:"body" db:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
