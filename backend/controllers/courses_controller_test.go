package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"project/backend/models"
)

func TestCreateCourse(t *testing.T) {
	app, _, cfg := newTestApp(t)
	token := adminToken(t, cfg)

	status, result := doJSON(t, app, "POST", "/api/courses", token, map[string]interface{}{
		"title":       "Go from scratch",
		"description": "Introductory Go course",
		"content":     "Syllabus...",
		"price":       49.99,
		"duration":    600,
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, result["success"])

	course := result["data"].(map[string]interface{})
	assert.Equal(t, "Go from scratch", course["title"])
	assert.Equal(t, 49.99, course["price"])
}

func TestCreateCourseRequiresAuth(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, result := doJSON(t, app, "POST", "/api/courses", "", map[string]interface{}{
		"title": "No token",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, result["success"])
}

func TestGetCoursesFilters(t *testing.T) {
	app, db, _ := newTestApp(t)

	category := models.Category{Name: "Programming"}
	db.Create(&category)
	db.Create(&models.Course{Title: "Go from scratch", CategoryID: category.ID})
	db.Create(&models.Course{Title: "Advanced Go", CategoryID: category.ID})
	db.Create(&models.Course{Title: "Watercolor basics"})

	status, result := doJSON(t, app, "GET", "/api/courses?title=Go", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, result["data"], 2)

	status, result = doJSON(t, app, "GET", "/api/courses?category="+itoa(category.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, result["data"], 2)

	status, result = doJSON(t, app, "GET", "/api/courses", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, result["data"], 3)
}

func TestSessionRequiresExistingCourse(t *testing.T) {
	app, _, cfg := newTestApp(t)
	token := adminToken(t, cfg)

	status, result := doJSON(t, app, "POST", "/api/sessions", token, map[string]interface{}{
		"course_id": 9999,
		"title":     "Orphan lesson",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Course not found", result["message"])
}

func TestDeleteCourseCascadesSessions(t *testing.T) {
	app, db, cfg := newTestApp(t)
	token := adminToken(t, cfg)

	course := models.Course{Title: "Doomed course"}
	db.Create(&course)
	db.Create(&models.Session{CourseID: course.ID, Title: "Lesson 1"})
	db.Create(&models.Session{CourseID: course.ID, Title: "Lesson 2"})

	keeper := models.Course{Title: "Survivor course"}
	db.Create(&keeper)
	db.Create(&models.Session{CourseID: keeper.ID, Title: "Kept lesson"})

	status, result := doJSON(t, app, "DELETE", "/api/courses/"+itoa(course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["success"])

	var count int64
	db.Model(&models.Session{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	db.Model(&models.Session{}).Where("course_id = ?", keeper.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCategoryCRUD(t *testing.T) {
	app, _, cfg := newTestApp(t)
	token := adminToken(t, cfg)

	status, result := doJSON(t, app, "POST", "/api/categories", token, map[string]interface{}{
		"name":        "Programming",
		"description": "Software courses",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	id := result["data"].(map[string]interface{})["ID"].(float64)

	status, result = doJSON(t, app, "PUT", "/api/categories/"+itoa(uint(id)), token, map[string]interface{}{
		"name": "Software",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Software", result["data"].(map[string]interface{})["name"])

	status, _ = doJSON(t, app, "DELETE", "/api/categories/"+itoa(uint(id)), token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "GET", "/api/categories/"+itoa(uint(id)), "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
