// Package storage abstracts blob storage for uploaded images. Implementations
// return a public URL for the stored object; all other image concerns (CDN,
// resizing) live behind that URL.
package storage

import "context"

// BlobStore stores immutable binary objects and returns a public URL.
type BlobStore interface {
	Put(ctx context.Context, data []byte, contentType string) (string, error)
}
