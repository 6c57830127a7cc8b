package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	put     map[string][]byte
	putOpts minio.PutObjectOptions
	putErr  error

	listed  []minio.ObjectInfo
	removed []string
}

func (f *fakeObjects) PutObject(_ context.Context, bucket, object string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	b, _ := io.ReadAll(r)
	if f.put == nil {
		f.put = map[string][]byte{}
	}
	f.put[bucket+"/"+object] = b
	f.putOpts = opts
	return minio.UploadInfo{Bucket: bucket, Key: object, Size: size}, nil
}

func (f *fakeObjects) ListObjects(_ context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(f.listed))
	for _, o := range f.listed {
		if len(o.Key) >= len(opts.Prefix) && o.Key[:len(opts.Prefix)] == opts.Prefix {
			ch <- o
		}
	}
	close(ch)
	return ch
}

func (f *fakeObjects) RemoveObject(_ context.Context, _, object string, _ minio.RemoveObjectOptions) error {
	f.removed = append(f.removed, object)
	return nil
}

func TestS3StoreSave(t *testing.T) {
	api := &fakeObjects{}
	s := newS3Store(api, S3Options{Endpoint: "s3.example.com", Bucket: "audio", Secure: true}, "voice")

	url, err := s.Save(context.Background(), "voice-1.mp3", []byte("ID3"), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/audio/voice-1.mp3", url)
	assert.Equal(t, "ID3", string(api.put["audio/voice-1.mp3"]))
	assert.Equal(t, "audio/mpeg", api.putOpts.ContentType)
	assert.Contains(t, api.putOpts.UserMetadata, "uploaded-at")
}

func TestS3StoreInsecureURL(t *testing.T) {
	s := newS3Store(&fakeObjects{}, S3Options{Endpoint: "localhost:9000", Bucket: "b"}, "voice")
	url, err := s.Save(context.Background(), "a b.mp3", []byte("x"), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/b/a%20b.mp3", url)
}

func TestS3StoreSaveErrors(t *testing.T) {
	s := newS3Store(&fakeObjects{putErr: errors.New("denied")}, S3Options{Bucket: "b"}, "voice")

	_, err := s.Save(context.Background(), "voice-1.mp3", []byte("x"), "audio/mpeg")
	assert.ErrorContains(t, err, "denied")

	_, err = s.Save(context.Background(), "a/b.mp3", []byte("x"), "audio/mpeg")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestS3StoreCleanup(t *testing.T) {
	old := NewObjectName("voice", "mp3")
	fresh := NewObjectName("voice", "mp3")
	api := &fakeObjects{listed: []minio.ObjectInfo{
		{Key: old, LastModified: time.Now().Add(-3 * time.Hour)},
		{Key: fresh, LastModified: time.Now()},
		{Key: "voice-manual.mp3", LastModified: time.Now().Add(-3 * time.Hour)},
		{Key: "keep.mp3", LastModified: time.Now().Add(-3 * time.Hour)},
	}}
	s := newS3Store(api, S3Options{Bucket: "b"}, "voice")

	n, err := s.Cleanup(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{old}, api.removed)
}

func TestS3StoreCleanupListError(t *testing.T) {
	api := &fakeObjects{listed: []minio.ObjectInfo{{Key: "voice-x", Err: errors.New("timeout")}}}
	s := newS3Store(api, S3Options{Bucket: "b"}, "voice")

	_, err := s.Cleanup(context.Background(), time.Hour)
	assert.ErrorContains(t, err, "timeout")
}
