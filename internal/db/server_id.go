package db

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sbtvjoe-max/UniChat1.1/internal/models"
)

// GetOrCreateServerID retrieves the server ID from the database,
// or generates and stores a new one if it doesn't exist.
// This should be called during server startup after migrations.
func GetOrCreateServerID(db *gorm.DB) (string, error) {
	var cfg models.ServerConfig

	err := db.Where("key = ?", models.ServerConfigKeyServerID).First(&cfg).Error
	if err == nil {
		return cfg.Value, nil
	}

	if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("failed to query server config: %w", err)
	}

	serverID := uuid.New().String()
	cfg = models.ServerConfig{
		Key:   models.ServerConfigKeyServerID,
		Value: serverID,
	}

	if err := db.Create(&cfg).Error; err != nil {
		return "", fmt.Errorf("failed to create server ID: %w", err)
	}

	slog.Info("Generated new server ID", "server_id", serverID)
	return serverID, nil
}

// GetServerID retrieves the server ID from the database.
// Returns an error if the server ID has not been initialized.
func GetServerID(db *gorm.DB) (string, error) {
	var cfg models.ServerConfig

	err := db.Where("key = ?", models.ServerConfigKeyServerID).First(&cfg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("server ID not initialized")
		}
		return "", fmt.Errorf("failed to query server config: %w", err)
	}

	return cfg.Value, nil
}
