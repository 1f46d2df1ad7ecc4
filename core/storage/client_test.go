package storage_test

import (
	"context"
	"testing"

	"commerce-linker/core/storage"
	"commerce-linker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "datasets", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "datasets").Return(true, nil)
		require.NoError(t, storage.EnsureBucket(ctx, m, "datasets", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "datasets").Return(false, nil)
		m.On("MakeBucket", ctx, "datasets", minio.MakeBucketOptions{Region: "eu"}).Return(nil)
		require.NoError(t, storage.EnsureBucket(ctx, m, "datasets", "eu"))
		m.AssertExpectations(t)
	})

	t.Run("Check fails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "datasets").Return(false, assert.AnError)
		assert.ErrorIs(t, storage.EnsureBucket(ctx, m, "datasets", ""), assert.AnError)
	})
}

func TestListKeys(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "exports/a/customer_accounts_dataset.csv"}
	ch <- minio.ObjectInfo{Key: "exports/a/customer_website_traffic_data.csv"}
	close(ch)
	m.On("ListObjects", ctx, "datasets", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	keys, err := storage.ListKeys(ctx, m, "datasets", "exports/")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}
