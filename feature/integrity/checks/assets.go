package checks

import (
	"context"
	"fmt"

	"armory/core/storage"
	"armory/feature/equipment"

	"github.com/minio/minio-go/v7"
)

// AssetReport is the result of an asset presence check.
type AssetReport struct {
	Total   int      `json:"total"`
	Found   int      `json:"found"`
	Missing []string `json:"missing"`
}

// CheckAssets verifies that the mesh of every catalog item exists in the bucket.
func CheckAssets(ctx context.Context, client storage.Client, bucket string, catalog *equipment.Catalog) (*AssetReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &AssetReport{Missing: []string{}}
	for _, item := range catalog.Items() {
		report.Total++

		found, err := objectExists(ctx, client, bucket, storage.ObjectKey(item.Path))
		if err != nil {
			return nil, err
		}
		if found {
			report.Found++
		} else {
			report.Missing = append(report.Missing, item.Path)
		}
	}

	return report, nil
}

func objectExists(ctx context.Context, client storage.Client, bucket, key string) (bool, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
		MaxKeys:   1,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list %s: %w", key, obj.Err)
		}
		if obj.Key == key {
			return true, nil
		}
	}
	return false, nil
}
