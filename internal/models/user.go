package models

import "time"

// User is a registered account. Rows are never updated or deleted.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:8;not null;uniqueIndex" json:"username"`
	FirstName  string    `gorm:"column:firstname;size:100;not null" json:"firstname"`
	LastName   string    `gorm:"column:lastname;size:100;not null" json:"lastname"`
	Country    string    `gorm:"size:100;not null" json:"country"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	ProfilePic *string   `gorm:"column:profilePic;size:512" json:"profilePic"`
	CreatedAt  time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
