package domain

import (
	"context"
	"io"
)

// BlobStore is the capability the editor and asset handlers need from the
// storage platform: upload bytes under a key, and resolve the public URL
// for a key. ResolveURL must be deterministic for a given key.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	ResolveURL(key string) string
}
