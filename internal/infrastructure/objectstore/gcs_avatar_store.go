package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

// GCSAvatarStore writes profile pictures to a Cloud Storage bucket under avatars/<user id>/.
type GCSAvatarStore struct {
	client *storage.Client
	bucket string
}

func NewGCSAvatarStore(client *storage.Client, bucket string) *GCSAvatarStore {
	return &GCSAvatarStore{client: client, bucket: bucket}
}

func (s *GCSAvatarStore) Upload(ctx context.Context, userID int64, r io.Reader, filename, contentType string) (string, error) {
	url, err := helpers.UploadObject(ctx, s.client, s.bucket, ObjectPath(userID, filename), contentType, r)
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	return url, nil
}

// ObjectPath names a fresh object per upload so cached URLs never serve a stale image.
func ObjectPath(userID int64, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("avatars/%d/%s%s", userID, uuid.NewString(), ext)
}
