package storage_test

import (
	"errors"
	"testing"

	"ship-registry/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "testkey", SecretKey: "testsecret", Bucket: "ships", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "testkey", SecretKey: "testsecret"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "testkey", SecretKey: "testsecret", UseSSL: true, Region: "us-east-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, storage.IsNotFound(nil))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
}
