package models

import (
	"time"

	"gorm.io/gorm"
)

// UserSessionProgress holds one row per (user, session) pair, created lazily
// on the first watch event and updated thereafter. The unique index backs the
// transactional find-or-create in the progress controller.
type UserSessionProgress struct {
	gorm.Model
	UserID      uint       `gorm:"not null;uniqueIndex:idx_user_session" json:"user_id"`
	SessionID   uint       `gorm:"not null;uniqueIndex:idx_user_session" json:"session_id"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	WatchTime   int        `gorm:"default:0" json:"watch_time"` // seconds
	LastWatched *time.Time `json:"last_watched"`
}

// SessionProgressRecord is the wire shape for progress reads. Sessions the
// user never watched come back as the zero value with LastWatched null.
type SessionProgressRecord struct {
	SessionID   uint       `json:"sessionId"`
	Completed   bool       `json:"completed"`
	WatchTime   int        `json:"watchTime"`
	LastWatched *time.Time `json:"lastWatched"`
}
