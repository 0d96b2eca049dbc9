package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, 2*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, 60*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
	assert.False(t, cfg.Auth.ExposeResetTokenWithoutMail)
	assert.Equal(t, StorageDriverS3, cfg.Storage.Driver)
	assert.Equal(t, "gallery", cfg.Storage.Buckets.Gallery)
	assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, int64(10<<20), cfg.Fetch.MaxBytes)
	assert.Equal(t, 1, cfg.Gallery.ImportConcurrency)
	assert.Equal(t, int64(100<<10), cfg.Assets.FaviconMaxBytes)
	assert.Equal(t, 10*time.Minute, cfg.Housekeeping.Interval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{Username: "owner", SessionTTL: 5 * time.Minute},
		Gallery: &GalleryConfig{ImportConcurrency: 4},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "owner", cfg.Auth.Username)
	assert.Equal(t, 5*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, 4, cfg.Gallery.ImportConcurrency)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "memory storage is valid",
			mutate: func(cfg *Config) { cfg.Storage.Driver = StorageDriverMem },
		},
		{
			name:    "s3 requires region",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = StorageDriverS3 },
			wantErr: "storage.region is required",
		},
		{
			name:    "file requires directory",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = StorageDriverFile },
			wantErr: "storage.localDir is required",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "ftp" },
			wantErr: "unknown storage driver",
		},
		{
			name: "enabled mail requires host",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverMem
				cfg.Mail.Enable = true
			},
			wantErr: "mail.host and mail.from are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.ApplyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	type document struct {
		Name  string   `yaml:"name"`
		Links []string `yaml:"links"`
	}

	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Jane\nlinks:\n  - a\n  - b\n"), 0o600))

	doc, err := LoadFile[document](path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", doc.Name)
	assert.Equal(t, []string{"a", "b"}, doc.Links)

	_, err = LoadFile[document](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
