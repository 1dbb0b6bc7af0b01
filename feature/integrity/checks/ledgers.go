package checks

import (
	"context"
	"fmt"

	"inventory-auditor/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckLedgers returns the ledger objects that are absent from the bucket.
// Objects are matched exactly, not by prefix.
func CheckLedgers(ctx context.Context, client storage.Client, bucket string, objects []string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, object := range objects {
		opts := minio.ListObjectsOptions{
			Prefix:    object,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err == nil && obj.Key == object {
				found = true
			}
			break
		}

		if !found {
			missing = append(missing, object)
		}
	}

	return missing, nil
}
