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

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// GetCourses godoc
// @Summary List courses
// @Description Returns the course catalog, optionally filtered by title or category
// @Tags courses
// @Produce json
// @Param title query string false "Title substring filter"
// @Param category query int false "Category ID filter"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	query := cc.DB.Model(&models.Course{})

	if title := c.Query("title"); title != "" {
		query = query.Where("title LIKE ?", "%"+title+"%")
	}
	if category := c.Query("category"); category != "" {
		if categoryID, err := strconv.Atoi(category); err == nil {
			query = query.Where("category_id = ?", categoryID)
		}
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Sessions").First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if course.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}
	return utils.Created(c, course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.Course
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course.CategoryID = input.CategoryID
	course.Title = input.Title
	course.Description = input.Description
	course.Content = input.Content
	course.Price = input.Price
	course.Duration = input.Duration
	course.ImageURL = input.ImageURL
	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// DeleteCourse removes a course together with its sessions.
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, id).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}
	return utils.Message(c, fiber.StatusOK, "Course deleted")
}
