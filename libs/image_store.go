package libs

import (
	"context"
	"io"
)

// StoredImage identifies an uploaded image. PublicID is what Delete needs.
type StoredImage struct {
	URL      string
	PublicID string
}

type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, filename string) (StoredImage, error)
	Delete(ctx context.Context, publicID string) error
}
