package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	ExportDir       string
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxBodyBytes    int64

	// ObjectStoreType selects where exported documents go: "local", "s3" or "minio".
	ObjectStoreType string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	MinIOEndpoint   string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOBucket     string
	MinIOUseSSL     bool

	// RedisAddr enables the render cache when set.
	RedisAddr      string
	RenderCacheTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("EXPORT_DIR", "./out")
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("OBJECT_STORE", "local")
	v.SetDefault("S3_PREFIX", "exports/")
	v.SetDefault("MINIO_BUCKET", "resumes")
	v.SetDefault("RENDER_CACHE_TTL", "10m")
	return v
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Port:            v.GetString("PORT"),
		Env:             normalizeEnv(v.GetString("ENV")),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		ExportDir:       v.GetString("EXPORT_DIR"),
		RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
		MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
		ObjectStoreType: strings.ToLower(strings.TrimSpace(v.GetString("OBJECT_STORE"))),
		AWSRegion:       v.GetString("AWS_REGION"),
		S3Bucket:        v.GetString("S3_BUCKET"),
		S3Prefix:        v.GetString("S3_PREFIX"),
		SSEKMSKeyID:     v.GetString("SSE_KMS_KEY_ID"),
		MinIOEndpoint:   v.GetString("MINIO_ENDPOINT"),
		MinIOAccessKey:  v.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey:  v.GetString("MINIO_SECRET_KEY"),
		MinIOBucket:     v.GetString("MINIO_BUCKET"),
		MinIOUseSSL:     v.GetBool("MINIO_USE_SSL"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RenderCacheTTL:  v.GetDuration("RENDER_CACHE_TTL"),
	}
}

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Variables already set in the environment win; missing files are ignored.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
