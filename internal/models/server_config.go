package models

import (
	"time"
)

// ServerConfig stores server-wide configuration as key-value pairs.
// It is the only table the scaffold owns; application schema is left
// to the apps built on top of it.
type ServerConfig struct {
	Key       string    `gorm:"primarykey;not null" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServerConfigKeys defines known configuration keys
const (
	ServerConfigKeyServerID = "server_id"
)
