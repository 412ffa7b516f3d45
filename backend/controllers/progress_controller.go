package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"
)

// ProgressController tracks per-user, per-session watch state. Both handlers
// are fail-soft: whatever goes wrong server-side, the client gets a 200 with
// empty or zero-value data so playback UIs never surface errors.
type ProgressController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProgressController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Logger: logger}
}

func zeroRecord(sessionID uint) models.SessionProgressRecord {
	return models.SessionProgressRecord{
		SessionID: sessionID,
		Completed: false,
		WatchTime: 0,
	}
}

func toRecord(p models.UserSessionProgress) models.SessionProgressRecord {
	return models.SessionProgressRecord{
		SessionID:   p.SessionID,
		Completed:   p.Completed,
		WatchTime:   p.WatchTime,
		LastWatched: p.LastWatched,
	}
}

// GetBulkProgress godoc
// @Summary Get watch progress for a set of sessions
// @Description Returns one record per requested session id; sessions never watched come back as zero values
// @Tags progress
// @Produce json
// @Param sessionIds query string true "Comma-separated session ids"
// @Success 200 {object} utils.SoftResponse
// @Router /api/user-sessions/progress [get]
func (pc *ProgressController) GetBulkProgress(c *fiber.Ctx) error {
	claims := middleware.CallerClaims(c)
	if claims == nil {
		return utils.Soft(c, []models.SessionProgressRecord{})
	}

	// Ids that do not parse as integers are dropped, not rejected.
	var sessionIDs []uint
	for _, raw := range strings.Split(c.Query("sessionIds"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			continue
		}
		sessionIDs = append(sessionIDs, uint(id))
	}

	if len(sessionIDs) == 0 {
		return utils.Soft(c, []models.SessionProgressRecord{})
	}

	var rows []models.UserSessionProgress
	if err := pc.DB.Where("user_id = ? AND session_id IN ?", claims.UserID, sessionIDs).
		Find(&rows).Error; err != nil {
		pc.Logger.Printf("progress: bulk query failed for user %d: %v", claims.UserID, err)
		return utils.Soft(c, []models.SessionProgressRecord{})
	}

	byID := make(map[uint]models.UserSessionProgress, len(rows))
	for _, row := range rows {
		byID[row.SessionID] = row
	}

	records := make([]models.SessionProgressRecord, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		if row, ok := byID[id]; ok {
			records = append(records, toRecord(row))
		} else {
			records = append(records, zeroRecord(id))
		}
	}

	return utils.Soft(c, records)
}

// UpdateProgress godoc
// @Summary Record a watch event for one session
// @Description Upserts the caller's progress row for the session inside a transaction
// @Tags progress
// @Accept json
// @Produce json
// @Param sessionId path int true "Session ID"
// @Param request body map[string]interface{} true "Progress payload"
// @Success 200 {object} utils.SoftResponse
// @Router /api/user-sessions/{sessionId}/progress [post]
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	claims := middleware.CallerClaims(c)
	if claims == nil {
		return utils.Soft(c, []models.SessionProgressRecord{})
	}

	sessionID, err := strconv.Atoi(c.Params("sessionId"))
	if err != nil || sessionID <= 0 {
		pc.Logger.Printf("progress: bad session id %q from user %d", c.Params("sessionId"), claims.UserID)
		return utils.Soft(c, zeroRecord(0))
	}

	type ProgressInput struct {
		Completed bool `json:"completed"`
		WatchTime int  `json:"watchTime"`
	}
	var input ProgressInput
	if err := c.BodyParser(&input); err != nil {
		pc.Logger.Printf("progress: bad payload for session %d from user %d: %v", sessionID, claims.UserID, err)
		return utils.Soft(c, zeroRecord(uint(sessionID)))
	}

	// Find-or-create runs in one transaction so two concurrent first-watch
	// events for the same (user, session) cannot both insert.
	var progress models.UserSessionProgress
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		err := tx.Where("user_id = ? AND session_id = ?", claims.UserID, sessionID).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.UserSessionProgress{
				UserID:      claims.UserID,
				SessionID:   uint(sessionID),
				Completed:   input.Completed,
				WatchTime:   input.WatchTime,
				LastWatched: &now,
			}
			return tx.Create(&progress).Error
		}
		if err != nil {
			return err
		}

		progress.Completed = input.Completed
		progress.WatchTime = input.WatchTime
		progress.LastWatched = &now
		return tx.Save(&progress).Error
	})
	if err != nil {
		// Swallowed: the client always sees a success envelope.
		pc.Logger.Printf("progress: upsert failed for user %d session %d: %v", claims.UserID, sessionID, err)
		return utils.Soft(c, zeroRecord(uint(sessionID)))
	}

	return utils.Soft(c, toRecord(progress))
}
