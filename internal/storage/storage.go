package storage

import "context"

// ObjectStore is the narrow contract the API layer uses to persist
// file bytes. Put writes the payload under key and returns a URL the
// frontend can fetch the object from.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (url string, err error)
}
