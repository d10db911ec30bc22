package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const foodFolder = "foods"

type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore prefers the separate credentials and falls back to a
// CLOUDINARY_URL style connection string.
func NewCloudinaryStore(cloudName, apiKey, apiSecret, cloudinaryURL string) (*CloudinaryStore, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cloudName != "" && apiKey != "" && apiSecret != "":
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	case cloudinaryURL != "":
		log.Printf("[Cloudinary] Using CLOUDINARY_URL: %s", maskURL(cloudinaryURL))
		cld, err = cloudinary.NewFromURL(cloudinaryURL)
	default:
		return nil, errors.New("cloudinary credentials not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: foodFolder}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, filename string) (StoredImage, error) {
	name := strings.TrimSuffix(strings.ReplaceAll(filename, " ", "_"), filepath.Ext(filename))
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), name)

	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         s.folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return StoredImage{}, fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if res == nil {
		return StoredImage{}, errors.New("cloudinary response is nil")
	}

	url := res.SecureURL
	if url == "" {
		url = res.URL
	}
	if url == "" {
		return StoredImage{}, errors.New("both SecureURL and URL are empty")
	}
	return StoredImage{URL: url, PublicID: res.PublicID}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if res != nil && res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", res.Result)
	}
	return nil
}

func maskURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:10] + "..." + url[len(url)-10:]
}
