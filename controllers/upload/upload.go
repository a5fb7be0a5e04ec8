package uploadControllers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadRequest struct {
	Filename      string `json:"filename"`
	ContentBase64 string `json:"contentBase64" binding:"required"`
}

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9.-]+`)
	dashRuns     = regexp.MustCompile(`-+`)
)

func sanitizeFileName(name string) string {
	if name == "" {
		name = "image"
	}
	name = strings.ToLower(name)
	name = invalidChars.ReplaceAllString(name, "-")
	name = dashRuns.ReplaceAllString(name, "-")
	if len(name) > 80 {
		name = name[:80]
	}
	return name
}

// POST /api/upload (admin)
//
// Accepts a base64-encoded image and stores it under a timestamped unique
// name; the returned URL is served by the static uploads mount.
func UploadImage(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "contentBase64 is required"})
			return
		}

		data, err := base64.StdEncoding.DecodeString(req.ContentBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base64 content"})
			return
		}

		fileName := sanitizeFileName(req.Filename)
		ext := filepath.Ext(fileName)
		if ext == "" {
			ext = ".png"
		}
		savedName := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

		if err := os.MkdirAll(uploadsDir, 0755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}
		if err := os.WriteFile(filepath.Join(uploadsDir, savedName), data, 0644); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": "/uploads/" + savedName})
	}
}
