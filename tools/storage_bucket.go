package tools

import (
	"context"
	"errors"
	"fmt"

	gcs "cloud.google.com/go/storage"
	fbstorage "firebase.google.com/go/storage"
)

// CheckDefaultBucket confirms the configured storage bucket exists and is reachable.
func CheckDefaultBucket(c context.Context, client *fbstorage.Client) (string, error) {
	bucket, err := client.DefaultBucket()
	if err != nil {
		return "", err
	}

	attrs, err := bucket.Attrs(c)
	if errors.Is(err, gcs.ErrBucketNotExist) {
		return "", errors.New("configured storage bucket does not exist")
	}
	if err != nil {
		return "", fmt.Errorf("bucket.Attrs: %w", err)
	}

	return attrs.Name, nil
}
