package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sbtvjoe-max/UniChat1.1/internal/models"
)

func setupInfoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.ServerConfig{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestGetInfo_ReturnsServerInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupInfoTestDB(t)

	serverID := "test-server-id-12345"
	db.Create(&models.ServerConfig{
		Key:   models.ServerConfigKeyServerID,
		Value: serverID,
	})

	handler := NewInfoHandler(homeTestConfig(), db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)

	handler.GetInfo(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response InfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if response.ServerID != serverID {
		t.Errorf("expected server ID %s, got %s", serverID, response.ServerID)
	}
	if response.GoVersion != runtime.Version() {
		t.Errorf("expected go version %s, got %s", runtime.Version(), response.GoVersion)
	}
	if response.OS != runtime.GOOS {
		t.Errorf("expected OS %s, got %s", runtime.GOOS, response.OS)
	}
	if response.Arch != runtime.GOARCH {
		t.Errorf("expected arch %s, got %s", runtime.GOARCH, response.Arch)
	}
	if response.ProjectName != "New Style" {
		t.Errorf("expected project name New Style, got %q", response.ProjectName)
	}
	if response.ProjectDescription != "a generated scaffold" {
		t.Errorf("unexpected project description: %q", response.ProjectDescription)
	}
	if response.ProjectImageURL != "https://cdn.example.com/cover.png" {
		t.Errorf("unexpected project image URL: %q", response.ProjectImageURL)
	}
	if response.DeploymentTimestamp == 0 {
		t.Error("expected a non-zero deployment timestamp")
	}
}

func TestGetInfo_ErrorsWhenServerIDNotInitialized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupInfoTestDB(t)

	handler := NewInfoHandler(homeTestConfig(), db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)

	handler.GetInfo(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
