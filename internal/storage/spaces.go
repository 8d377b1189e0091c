package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// opTimeout bounds every object-store call. The core protocol has no
// cancellation semantics of its own, so a timed-out call surfaces as a
// transient upload failure.
const opTimeout = 30 * time.Second

// SpacesStorage implements ObjectStore against DigitalOcean Spaces (or any
// S3-compatible endpoint) using the MinIO client.
type SpacesStorage struct {
	client    *minio.Client
	region    string
	cdnDomain string
}

// NewSpacesStorage creates the S3 client. Bucket provisioning is a separate
// step (EnsureBuckets) so that startup can fail loudly before the server
// begins accepting uploads.
func NewSpacesStorage(endpoint, accessKey, secretKey, region, cdnDomain string, useSSL bool) (*SpacesStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create spaces client: %w", err)
	}

	return &SpacesStorage{
		client:    client,
		region:    region,
		cdnDomain: cdnDomain,
	}, nil
}

// EnsureBuckets idempotently provisions the given buckets: each is probed,
// created if missing, and set to public-read. A probe answered with 403 is
// treated like a missing bucket, because the provider returns AccessDenied
// for buckets this account has never created. Any other probe error is
// returned to the caller and must abort startup.
func (s *SpacesStorage) EnsureBuckets(ctx context.Context, names ...string) error {
	for _, name := range names {
		exists, err := s.client.BucketExists(ctx, name)
		if err != nil {
			code := minio.ToErrorResponse(err).Code
			if code != "AccessDenied" && code != "NoSuchBucket" {
				return fmt.Errorf("check bucket %q: %w", name, err)
			}
			exists = false
		}
		if exists {
			log.Printf("storage: bucket %q already exists", name)
			continue
		}

		if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: s.region}); err != nil {
			// Another process may have won the creation race.
			if minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		if err := s.client.SetBucketPolicy(ctx, name, publicReadPolicy(name)); err != nil {
			return fmt.Errorf("set public-read policy on %q: %w", name, err)
		}
		log.Printf("storage: created bucket %q with public-read policy", name)
	}
	return nil
}

// Upload performs a single atomic put. size must be the exact byte count.
func (s *SpacesStorage) Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// ListKeys returns all object keys under prefix in the given bucket.
func (s *SpacesStorage) ListKeys(ctx context.Context, bucket, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var keys []string
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// PublicURL returns the CDN URL for a key, e.g.
// "https://katha-audios.sfo3.cdn.digitaloceanspaces.com/a-r-rahman/1712_song.mp3".
func (s *SpacesStorage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.%s.cdn.%s/%s", bucket, s.region, s.cdnDomain, key)
}

// publicReadPolicy returns an S3 bucket policy JSON allowing anonymous GET
// on all objects in the bucket.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
