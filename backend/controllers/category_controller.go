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

type CategoryController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCategoryController(db *gorm.DB, cfg *config.Config) *CategoryController {
	return &CategoryController{DB: db, Cfg: cfg}
}

func (cc *CategoryController) GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := cc.DB.Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not query categories")
	}
	return utils.Success(c, fiber.StatusOK, categories)
}

func (cc *CategoryController) GetCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	var category models.Category
	if err := cc.DB.Preload("Courses").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Category not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return utils.Success(c, fiber.StatusOK, category)
}

func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if category.Name == "" {
		return utils.BadRequest(c, "Name is required")
	}

	if err := cc.DB.Create(&category).Error; err != nil {
		return utils.InternalServerError(c, "Could not create category")
	}
	return utils.Created(c, category)
}

func (cc *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Category not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.Category
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := cc.DB.Save(&category).Error; err != nil {
		return utils.InternalServerError(c, "Could not update category")
	}
	return utils.Success(c, fiber.StatusOK, category)
}

func (cc *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	if err := cc.DB.Delete(&models.Category{}, id).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete category")
	}
	return utils.Message(c, fiber.StatusOK, "Category deleted")
}
