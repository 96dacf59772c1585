package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"ot-tracking-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	objects     map[string][]byte
	contentType string
	putErr      error
	expiry      time.Duration
}

func (f *fakeObjectStore) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucketName+"/"+objectName] = data
	f.contentType = opts.ContentType
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func (f *fakeObjectStore) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	f.expiry = expires
	return url.Parse("https://minio.local/" + bucketName + "/" + objectName + "?X-Amz-Expires=3600")
}

func TestMinioStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Upload JSON", func(t *testing.T) {
		store := &fakeObjectStore{objects: map[string][]byte{}}
		storage := &minioStorage{MinioClient: store}

		name, err := storage.UploadJSON(ctx, "reports", "p1/report.json", []byte(`{"ok":true}`))
		require.NoError(t, err)
		assert.Equal(t, "p1/report.json", name)
		assert.Equal(t, []byte(`{"ok":true}`), store.objects["reports/p1/report.json"])
		assert.Equal(t, constvars.MIMEApplicationJSON, store.contentType)
	})

	t.Run("Upload Error", func(t *testing.T) {
		storage := &minioStorage{MinioClient: &fakeObjectStore{putErr: errors.New("bucket missing")}}
		_, err := storage.UploadJSON(ctx, "reports", "x.json", []byte("{}"))
		assert.Error(t, err)
	})

	t.Run("Presigned URL", func(t *testing.T) {
		store := &fakeObjectStore{objects: map[string][]byte{}}
		storage := &minioStorage{MinioClient: store}

		presigned, err := storage.GetObjectUrlWithExpiryTime(ctx, "reports", "p1/report.json", time.Hour)
		require.NoError(t, err)
		assert.Contains(t, presigned, "reports/p1/report.json")
		assert.Equal(t, time.Hour, store.expiry)
	})
}
