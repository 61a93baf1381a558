package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"ship-registry/core/storage"
	"ship-registry/feature/fleet/snapshot"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Folders returns the folders holding the given snapshot objects, sorted.
func Folders(objects []snapshot.Object) []string {
	seen := make(map[string]bool)
	var folders []string
	for _, o := range objects {
		dir := path.Dir(o.Path)
		if dir == "." || seen[dir] {
			continue
		}
		seen[dir] = true
		folders = append(folders, dir)
	}
	sort.Strings(folders)
	return folders
}

// CheckStructure returns the folders that hold no object in the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderKey(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates an empty marker object for every missing folder.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderKey(folder), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderKey(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
