package handlers

import (
	"net/http"

	"parenthub/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 5 MB cap on uploaded images.
const maxImageSize = 5 << 20

// UploadImageHandler stores a multipart "image" file and returns its URL.
// The optional "folder" field groups uploads (products, donations, profiles).
func UploadImageHandler(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		if fileHeader.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 5 MB limit"})
			return
		}

		folder := c.PostForm("folder")
		if folder == "" {
			folder = "uploads"
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
			return
		}
		defer file.Close()

		url, err := svc.UploadImage(c.Request.Context(), file, folder)
		if err != nil {
			getLogger(c).Error("image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
