package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
	"github.com/sbtvjoe-max/UniChat1.1/internal/db"
)

// InfoHandler handles server info requests
type InfoHandler struct {
	cfg       *config.Config
	db        *gorm.DB
	startedAt time.Time
}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler(cfg *config.Config, database *gorm.DB) *InfoHandler {
	return &InfoHandler{cfg: cfg, db: database, startedAt: time.Now()}
}

// InfoResponse represents the server info response
type InfoResponse struct {
	ServerID            string `json:"server_id"`
	Version             string `json:"version"`
	GoVersion           string `json:"go_version"`
	OS                  string `json:"os"`
	Arch                string `json:"arch"`
	ProjectName         string `json:"project_name"`
	ProjectDescription  string `json:"project_description"`
	ProjectImageURL     string `json:"project_image_url"`
	DeploymentTimestamp int64  `json:"deployment_timestamp"`
}

// GetInfo godoc
// @Summary Get server information
// @Description Returns server information including the unique server ID, version, and project metadata
// @Tags system
// @Produce json
// @Success 200 {object} InfoResponse
// @Failure 500 {object} ErrorResponse
// @Router /info [get]
func (h *InfoHandler) GetInfo(c *gin.Context) {
	serverID, err := db.GetServerID(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to retrieve server ID",
		})
		return
	}

	c.JSON(http.StatusOK, InfoResponse{
		ServerID:            serverID,
		Version:             Version,
		GoVersion:           runtime.Version(),
		OS:                  runtime.GOOS,
		Arch:                runtime.GOARCH,
		ProjectName:         h.cfg.Project.Name,
		ProjectDescription:  h.cfg.Project.Description,
		ProjectImageURL:     h.cfg.Project.ImageURL,
		DeploymentTimestamp: h.startedAt.Unix(),
	})
}
