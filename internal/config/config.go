package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Backend string

const (
	BackendAuto   Backend = ""
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQL    Backend = "sql"
	BackendMongo  Backend = "mongo"
)

type Config struct {
	HTTPAddr string

	QuestionStore Backend
	DataFile      string // file backend

	DBDriver string // sqlite|postgres
	DBDSN    string

	MongoURI      string
	MongoDatabase string

	BlobBasePath string
	KeepUploads  bool

	EnableEventLog bool

	MaxUploadBytes int64

	CORSOrigins []string

	// ReadOnlyFS is set on serverless hosts where the working directory
	// cannot be written.
	ReadOnlyFS bool
}

// Load reads a .env file when present and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	readOnly := os.Getenv("VERCEL") != ""
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		QuestionStore:  Backend(strings.ToLower(os.Getenv("QUESTION_STORE"))),
		DataFile:       envOr("DATA_FILE", "./data/questions.json"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  envOr("MONGODB_DATABASE", "mcq"),
		BlobBasePath:   envOr("BLOB_BASE_PATH", "./data"),
		KeepUploads:    envBool("KEEP_UPLOADS", !readOnly),
		EnableEventLog: envBool("ENABLE_EVENT_LOG", false),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20<<20),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000"),
		ReadOnlyFS:     readOnly,
	}
}

// ResolvedBackend applies the fallback order when no backend is named:
// mongo when a URI is configured, memory on a read-only host, else file.
func (c Config) ResolvedBackend() Backend {
	switch {
	case c.QuestionStore != BackendAuto:
		return c.QuestionStore
	case c.MongoURI != "":
		return BackendMongo
	case c.ReadOnlyFS:
		return BackendMemory
	default:
		return BackendFile
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt64(k string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(k), 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
