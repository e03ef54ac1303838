package service

import (
	"context"
	"io"
)

// Uploader is the blob-store port. URLs returned by Upload are durable and
// never tied to a database record by the store itself; attaching them to a
// profile or project field is the caller's job.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
	// Owns reports whether url points into this store. Foreign URLs
	// (placeholders, third-party images) must never be deleted.
	Owns(url string) bool
	// PublicID extracts the store asset id from one of our URLs.
	PublicID(url string) (string, bool)
}
