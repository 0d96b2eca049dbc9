package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"accessKeyId": "",
			"buckets": map[string]any{
				"gallery": "gallery",
			},
		},
		"auth": map[string]any{
			"bootstrapPasswordHash": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_ACCESSKEYID", want: "storage.accessKeyId"},
		{envKey: "STORAGE_BUCKETS_GALLERY", want: "storage.buckets.gallery"},
		{envKey: "AUTH_BOOTSTRAPPASSWORDHASH", want: "auth.bootstrapPasswordHash"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
