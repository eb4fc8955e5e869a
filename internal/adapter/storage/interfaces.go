package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectStorage binds the public-read bucket. Upload never overwrites: a key
// collision returns domain.ErrObjectExists. Delete returns
// domain.ErrObjectNotFound when the object is already gone, so callers can
// decide whether an absent object is an error.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
