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

type SubscriptionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSubscriptionController(db *gorm.DB, cfg *config.Config) *SubscriptionController {
	return &SubscriptionController{DB: db, Cfg: cfg}
}

// GetSubscriptions lists subscriptions joined with their user and course for
// the back-office display. Rows carry the raw startDate/endDate/isActive
// fields; whether a subscription is currently valid is computed by the
// caller, not here.
func (sc *SubscriptionController) GetSubscriptions(c *fiber.Ctx) error {
	query := sc.DB.Model(&models.Subscription{}).Preload("User").Preload("Course")

	if user := c.Query("userId"); user != "" {
		if userID, err := strconv.Atoi(user); err == nil {
			query = query.Where("user_id = ?", userID)
		}
	}

	var subscriptions []models.Subscription
	if err := query.Find(&subscriptions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query subscriptions")
	}
	return utils.Success(c, fiber.StatusOK, subscriptions)
}

func (sc *SubscriptionController) GetSubscription(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid subscription ID")
	}

	var subscription models.Subscription
	if err := sc.DB.Preload("User").Preload("Course").First(&subscription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Subscription not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return utils.Success(c, fiber.StatusOK, subscription)
}

func (sc *SubscriptionController) CreateSubscription(c *fiber.Ctx) error {
	var subscription models.Subscription
	if err := c.BodyParser(&subscription); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := sc.DB.First(&user, subscription.UserID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}
	var course models.Course
	if err := sc.DB.First(&course, subscription.CourseID).Error; err != nil {
		return utils.NotFound(c, "Course not found")
	}

	if err := sc.DB.Create(&subscription).Error; err != nil {
		return utils.InternalServerError(c, "Could not create subscription")
	}
	return utils.Created(c, subscription)
}

// UpdateSubscription toggles the entitlement window fields. IsActive is set
// explicitly here and nowhere else; there is no automatic transition when
// EndDate passes.
func (sc *SubscriptionController) UpdateSubscription(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid subscription ID")
	}

	var subscription models.Subscription
	if err := sc.DB.First(&subscription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Subscription not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.Subscription
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	subscription.StartDate = input.StartDate
	subscription.EndDate = input.EndDate
	subscription.IsActive = input.IsActive
	if err := sc.DB.Save(&subscription).Error; err != nil {
		return utils.InternalServerError(c, "Could not update subscription")
	}
	return utils.Success(c, fiber.StatusOK, subscription)
}

func (sc *SubscriptionController) DeleteSubscription(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid subscription ID")
	}

	if err := sc.DB.Delete(&models.Subscription{}, id).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete subscription")
	}
	return utils.Message(c, fiber.StatusOK, "Subscription deleted")
}
