package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sbtvjoe-max/UniChat1.1/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

func TestGetOrCreateServerID_GeneratesUUID(t *testing.T) {
	db := setupTestDB(t)

	serverID, err := GetOrCreateServerID(db)
	if err != nil {
		t.Fatalf("GetOrCreateServerID() error = %v", err)
	}

	if _, err := uuid.Parse(serverID); err != nil {
		t.Errorf("server ID %q is not a valid UUID: %v", serverID, err)
	}
}

func TestGetOrCreateServerID_StableAcrossCalls(t *testing.T) {
	db := setupTestDB(t)

	first, err := GetOrCreateServerID(db)
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}

	second, err := GetOrCreateServerID(db)
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}

	if first != second {
		t.Errorf("server ID changed between calls: %q != %q", first, second)
	}
}

func TestGetServerID_ErrorsWhenUninitialized(t *testing.T) {
	db := setupTestDB(t)

	if _, err := GetServerID(db); err == nil {
		t.Fatal("expected error when server ID not initialized")
	}
}

func TestGetServerID_ReturnsStoredValue(t *testing.T) {
	db := setupTestDB(t)

	stored := "test-server-id-12345"
	db.Create(&models.ServerConfig{
		Key:   models.ServerConfigKeyServerID,
		Value: stored,
	})

	got, err := GetServerID(db)
	if err != nil {
		t.Fatalf("GetServerID() error = %v", err)
	}
	if got != stored {
		t.Errorf("expected server ID %s, got %s", stored, got)
	}
}
