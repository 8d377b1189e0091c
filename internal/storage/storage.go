// Package storage defines the interface for object storage operations.
// The Spaces implementation works with any S3-compatible provider
// (DigitalOcean Spaces in production, MinIO locally).
package storage

import (
	"context"
	"io"
)

// ObjectStore is the interface for writing and probing keyed objects.
type ObjectStore interface {
	// Upload streams data to the store under the given bucket and key.
	Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error
	// ListKeys returns the keys of all objects under the given prefix.
	ListKeys(ctx context.Context, bucket, prefix string) ([]string, error)
	// PublicURL constructs the CDN URL for a given bucket and key.
	PublicURL(bucket, key string) string
}

// BucketSet names the two provisioned containers. It is assembled once at
// startup by the provisioner and handed to consumers as a value; nothing
// mutates it afterwards.
type BucketSet struct {
	Audio string
	Image string
}

// NewBucketSet derives the audio and image bucket names from a deployment
// prefix, e.g. "katha-" -> {katha-audios, katha-images}.
func NewBucketSet(prefix string) BucketSet {
	return BucketSet{
		Audio: prefix + "audios",
		Image: prefix + "images",
	}
}

// Names returns the bucket names in provisioning order.
func (b BucketSet) Names() []string {
	return []string{b.Audio, b.Image}
}
