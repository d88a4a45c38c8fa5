package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// Mode is set by the router based on config
var Mode = "development"

// GetVersion godoc
// @Summary Get version information
// @Description Returns version information about the server
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":    Version,
		"mode":       Mode,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
	})
}
