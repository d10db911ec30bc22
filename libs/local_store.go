package libs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore keeps images on disk under root/foods. Used when Cloudinary is
// not configured; the router serves root at /uploads.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, foodFolder), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Upload(_ context.Context, file io.Reader, filename string) (StoredImage, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	rel := path.Join(foodFolder, name)

	dst, err := os.Create(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return StoredImage{}, fmt.Errorf("failed to save image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return StoredImage{}, fmt.Errorf("failed to save image: %w", err)
	}
	return StoredImage{URL: "/uploads/" + rel, PublicID: rel}, nil
}

func (s *LocalStore) Delete(_ context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(publicID))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid image reference: %s", publicID)
	}
	err := os.Remove(filepath.Join(s.root, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
