package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "QUESTION_STORE", "DATA_FILE", "DB_DRIVER", "DB_DSN",
		"MONGODB_URI", "MONGODB_DATABASE", "BLOB_BASE_PATH", "KEEP_UPLOADS",
		"ENABLE_EVENT_LOG", "MAX_UPLOAD_BYTES", "CORS_ORIGINS", "VERCEL",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c := FromEnv()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "./data/questions.json", c.DataFile)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.True(t, c.KeepUploads)
	assert.False(t, c.EnableEventLog)
	assert.Equal(t, int64(20<<20), c.MaxUploadBytes)
	assert.Equal(t, []string{"http://localhost:3000"}, c.CORSOrigins)
	assert.Equal(t, BackendFile, c.ResolvedBackend())
}

func TestResolvedBackend(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Backend
	}{
		{"explicit wins", map[string]string{"QUESTION_STORE": "SQL", "MONGODB_URI": "mongodb://x"}, BackendSQL},
		{"mongo uri", map[string]string{"MONGODB_URI": "mongodb://localhost:27017"}, BackendMongo},
		{"read-only host", map[string]string{"VERCEL": "1"}, BackendMemory},
		{"default", nil, BackendFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, FromEnv().ResolvedBackend())
		})
	}
}

func TestReadOnlyHostDisablesUploads(t *testing.T) {
	clearEnv(t)
	t.Setenv("VERCEL", "1")
	assert.False(t, FromEnv().KeepUploads)
}

func TestParsers(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_UPLOAD_BYTES", "nope")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("ENABLE_EVENT_LOG", "yes")
	c := FromEnv()

	assert.Equal(t, int64(20<<20), c.MaxUploadBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
	assert.True(t, c.EnableEventLog)
}
