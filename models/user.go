package models

// User represents a registered account. The first account ever created is
// flagged as the site administrator.
type User struct {
	ID           uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Email        string `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash string `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Name         string `json:"name" db:"name" gorm:"type:text;not null"`
	IsAdmin      bool   `json:"isAdmin" db:"is_admin" gorm:"not null;default:false"`
}
