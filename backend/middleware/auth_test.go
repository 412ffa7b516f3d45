package middleware_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"
)

func setupGateTest(t *testing.T) (*fiber.App, *gorm.DB, *config.Config, *bool) {
	t.Helper()

	cfg := &config.Config{JWTSecret: "testsecret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := utils.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	handlerRan := false
	app := fiber.New()
	app.Get("/strict", middleware.StrictAuth(db, cfg), func(c *fiber.Ctx) error {
		handlerRan = true
		return utils.Success(c, fiber.StatusOK, middleware.CallerClaims(c).Username)
	})
	app.Get("/lenient", middleware.LenientAuth(cfg), func(c *fiber.Ctx) error {
		handlerRan = true
		return utils.Soft(c, middleware.CallerClaims(c).Username)
	})

	return app, db, cfg, &handlerRan
}

func TestStrictAuthMissingToken(t *testing.T) {
	app, _, _, handlerRan := setupGateTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/strict", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, *handlerRan)

	var body map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestStrictAuthMalformedToken(t *testing.T) {
	app, _, _, handlerRan := setupGateTest(t)

	req := httptest.NewRequest("GET", "/strict", nil)
	req.Header.Set("token", "garbage")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, *handlerRan)
}

func TestStrictAuthValidUser(t *testing.T) {
	app, db, cfg, handlerRan := setupGateTest(t)

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", IsActive: true}
	db.Create(&user)

	token, _ := utils.GenerateToken(user.ID, user.Username, utils.RoleUser, cfg)
	req := httptest.NewRequest("GET", "/strict", nil)
	req.Header.Set("token", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, *handlerRan)
}

func TestStrictAuthDeletedUser(t *testing.T) {
	app, db, cfg, handlerRan := setupGateTest(t)

	user := models.User{Username: "ghost", Email: "ghost@example.com", PasswordHash: "x", IsActive: true}
	db.Create(&user)
	token, _ := utils.GenerateToken(user.ID, user.Username, utils.RoleUser, cfg)
	db.Delete(&user)

	req := httptest.NewRequest("GET", "/strict", nil)
	req.Header.Set("token", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, *handlerRan)
}

func TestLenientAuthNoHeader(t *testing.T) {
	app, _, _, handlerRan := setupGateTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/lenient", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, *handlerRan)

	var body map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "success", body["status"])
	assert.Empty(t, body["data"])
}

func TestLenientAuthBadToken(t *testing.T) {
	app, _, _, handlerRan := setupGateTest(t)

	req := httptest.NewRequest("GET", "/lenient", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, *handlerRan)
}

func TestLenientAuthValidToken(t *testing.T) {
	app, _, cfg, handlerRan := setupGateTest(t)

	token, _ := utils.GenerateToken(7, "bob", utils.RoleUser, cfg)
	req := httptest.NewRequest("GET", "/lenient", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, *handlerRan)

	var body map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "bob", body["data"])
}
