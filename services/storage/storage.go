// Package storage uploads listing and campaign images to Cloudinary.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"parenthub/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// StorageService stores uploaded images and returns their public URL.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

// CloudinaryStorage implements StorageService on a Cloudinary account.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds the service from the CLOUDINARY_URL-style
// credential in the app config.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	credURL := config.AppConfig.CloudinaryURL
	if credURL == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromURL(credURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{client: cld}, nil
}

// UploadImage stores the image under the given folder and returns its
// delivery URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: uuid.New().String(),
		Folder:   folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no delivery url")
	}
	return resp.SecureURL, nil
}
