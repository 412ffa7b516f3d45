package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription is one user's entitlement window to one course. Whether the
// window is currently valid is computed by callers from StartDate/EndDate;
// IsActive is toggled explicitly and never flipped automatically on expiry.
type Subscription struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	User      User      `json:"user,omitempty"`
	Course    Course    `json:"course,omitempty"`
}
