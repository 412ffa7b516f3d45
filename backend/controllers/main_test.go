package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/models"
	"project/backend/routes"
	"project/backend/utils"
)

// newTestApp builds a full app over an in-memory database so handler tests
// go through the real route wiring, gates included.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:     "testsecret",
		AdminUsername: "admin",
		AdminPassword: "adminpass",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := utils.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg, log.New(io.Discard, "", 0))

	return app, db, cfg
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("token", token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, target, err)
	}

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := utils.GenerateToken(0, cfg.AdminUsername, utils.RoleAdmin, cfg)
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}
	return token
}
