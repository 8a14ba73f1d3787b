package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	bucket, key, contentType, body string
	size                          int64
	getErr                        error
}

func (f *fakeClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.bucket, f.key, f.contentType, f.body, f.size = bucketName, objectName, opts.ContentType, string(data), objectSize
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func (f *fakeClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	return nil, f.getErr
}

func TestSaveUploadsUnderPrefix(t *testing.T) {
	client := &fakeClient{}
	store := NewWithClient(client, "resumes", "/exports/")
	doc := "<!DOCTYPE html><html><body>hi</body></html>"

	key, size, mimeType, err := store.Save(context.Background(), "Jane/Doe.html", strings.NewReader(doc))

	require.NoError(t, err)
	require.Equal(t, "Jane_Doe.html", key)
	require.Equal(t, int64(len(doc)), size)
	require.True(t, strings.HasPrefix(mimeType, "text/html"))
	require.Equal(t, "resumes", client.bucket)
	require.Equal(t, "exports/Jane_Doe.html", client.key)
	require.Equal(t, mimeType, client.contentType)
	require.Equal(t, doc, client.body)
	require.Equal(t, int64(len(doc)), client.size)
}

func TestOpenWrapsClientError(t *testing.T) {
	store := NewWithClient(&fakeClient{getErr: errors.New("no such key")}, "resumes", "")

	_, err := store.Open(context.Background(), "missing.html")

	require.ErrorContains(t, err, "key=missing.html")
}

func TestNewRequiresEndpointAndBucket(t *testing.T) {
	_, err := New(context.Background(), Config{Bucket: "b"})
	require.Error(t, err)
	_, err = New(context.Background(), Config{Endpoint: "localhost:9000"})
	require.Error(t, err)
}
