package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"
)

type SessionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSessionController(db *gorm.DB, cfg *config.Config) *SessionController {
	return &SessionController{DB: db, Cfg: cfg}
}

func (sc *SessionController) GetSessions(c *fiber.Ctx) error {
	query := sc.DB.Model(&models.Session{})

	if course := c.Query("courseId"); course != "" {
		if courseID, err := strconv.Atoi(course); err == nil {
			query = query.Where("course_id = ?", courseID)
		}
	}

	var sessions []models.Session
	if err := query.Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query sessions")
	}
	return utils.Success(c, fiber.StatusOK, sessions)
}

func (sc *SessionController) GetSession(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	var session models.Session
	if err := sc.DB.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Session not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return utils.Success(c, fiber.StatusOK, session)
}

// CreateSession requires an existing parent course.
func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	var session models.Session
	if err := c.BodyParser(&session); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if session.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	var course models.Course
	if err := sc.DB.First(&course, session.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := sc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Could not create session")
	}
	return utils.Created(c, session)
}

func (sc *SessionController) UpdateSession(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	var session models.Session
	if err := sc.DB.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Session not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.Session
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	session.Title = input.Title
	session.Description = input.Description
	session.Duration = input.Duration
	if err := sc.DB.Save(&session).Error; err != nil {
		return utils.InternalServerError(c, "Could not update session")
	}
	return utils.Success(c, fiber.StatusOK, session)
}

func (sc *SessionController) DeleteSession(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	if err := sc.DB.Delete(&models.Session{}, id).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete session")
	}
	return utils.Message(c, fiber.StatusOK, "Session deleted")
}
