package port

import (
	"context"
	"io"
)

// UploadInput carries the data for an object storage upload.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// UploadOutput contains metadata from a completed upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts the archive store for uploaded invoice images.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
