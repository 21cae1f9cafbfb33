package service

import "context"

// ImageStorage stores an uploaded image and returns its public URL.
// Buffer in, URL out; the adapter never touches the HTTP response.
type ImageStorage interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
