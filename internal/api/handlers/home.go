package handlers

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
)

// HomeHandler serves the landing endpoint with environment details.
type HomeHandler struct {
	cfg *config.Config
	// startedAt is baked in at construction and reused for
	// cache-busting static asset URLs.
	startedAt time.Time
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(cfg *config.Config) *HomeHandler {
	return &HomeHandler{cfg: cfg, startedAt: time.Now()}
}

// HomeResponse represents the landing payload
type HomeResponse struct {
	ProjectName         string `json:"project_name"`
	AgentBrand          string `json:"agent_brand"`
	GoVersion           string `json:"go_version"`
	CurrentTime         string `json:"current_time"`
	HostName            string `json:"host_name"`
	ProjectDescription  string `json:"project_description"`
	ProjectImageURL     string `json:"project_image_url"`
	DeploymentTimestamp int64  `json:"deployment_timestamp"`
}

// Home godoc
// @Summary Landing screen data
// @Description Returns project metadata and environment details for the landing screen
// @Tags system
// @Produce json
// @Success 200 {object} HomeResponse
// @Router / [get]
func (h *HomeHandler) Home(c *gin.Context) {
	host := strings.ToLower(c.Request.Host)

	c.JSON(http.StatusOK, HomeResponse{
		ProjectName:         h.cfg.Project.Name,
		AgentBrand:          agentBrand(host),
		GoVersion:           runtime.Version(),
		CurrentTime:         time.Now().UTC().Format(time.RFC3339),
		HostName:            host,
		ProjectDescription:  h.cfg.Project.Description,
		ProjectImageURL:     h.cfg.Project.ImageURL,
		DeploymentTimestamp: h.startedAt.Unix(),
	})
}

// agentBrand picks the generator brand shown on the landing screen
// based on the serving host.
func agentBrand(host string) string {
	if hostname := stripPort(host); hostname == "appwizzy.com" {
		return "AppWizzy"
	}
	return "Flatlogic"
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	// Bracketed IPv6 literals compare as bare addresses.
	host = strings.TrimPrefix(host, "[")
	return strings.TrimSuffix(host, "]")
}
