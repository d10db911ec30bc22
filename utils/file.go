package utils

import (
	"path/filepath"
	"strings"

	"foodhub/models"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func ValidateImage(filename string, size, maxSize int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return models.ErrInvalidImage
	}
	if maxSize > 0 && size > maxSize {
		return models.ErrImageTooLarge
	}
	return nil
}
