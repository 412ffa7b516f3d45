package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	Courses     []Course `json:"courses,omitempty"`
}

type Course struct {
	gorm.Model
	CategoryID  uint      `json:"category_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"` // minutes
	ImageURL    string    `json:"image_url"`
	Sessions    []Session `gorm:"constraint:OnDelete:CASCADE" json:"sessions,omitempty"`
}

// Session is a single lesson inside a course.
type Session struct {
	gorm.Model
	CourseID    uint   `gorm:"not null;index" json:"course_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
}
