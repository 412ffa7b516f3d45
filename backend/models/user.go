package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username      string         `gorm:"unique;not null" json:"username"`
	Email         string         `gorm:"unique;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	Subscriptions []Subscription `json:"subscriptions,omitempty"`
}
