// Package storage archives generated documents in a MinIO bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned by Fetch when no document with the requested
// name exists in the bucket.
var ErrNotFound = errors.New("no document with this name exists in the archive")

// Archive stores generated documents so that they can be retrieved later,
// independent of the requester keeping their download.
type Archive struct {
	client *minio.Client
	bucket string
}

// NewArchive connects to MinIO and ensures the bucket exists.
func NewArchive(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Archive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}

		log.Info().Str("bucket", bucket).Msg("storage bucket created")
	}

	return &Archive{
		client: client,
		bucket: bucket,
	}, nil
}

// Store writes a document to the bucket.
func (a *Archive) Store(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store document %q: %w", name, err)
	}

	return nil
}

// Fetch reads a document from the bucket.
func (a *Archive) Fetch(ctx context.Context, name string) ([]byte, error) {
	object, err := a.client.GetObject(ctx, a.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %q: %w", name, err)
	}
	defer object.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(object)
	if err != nil {
		// GetObject connects lazily, a missing object only surfaces here
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to read document %q: %w", name, err)
	}

	return buf.Bytes(), nil
}
