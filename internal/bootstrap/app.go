package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resume-builder/internal/builder"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/cache"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	miniostore "resume-builder/internal/shared/storage/object/minio"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/render"
)

// App holds shared dependencies for the preview server.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Store          object.ObjectStore
	Cache          cache.DocumentCache
	Renderers      *render.Registry
	BuilderHandler *builder.Handler
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	store, err := BuildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		Store:     store,
		Cache:     BuildCache(cfg),
		Renderers: render.Default(),
	}
	app.BuilderHandler = builder.NewHandler(app.Renderers, app.Store, cfg.MaxBodyBytes)
	app.BuilderHandler.Cache = app.Cache
	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		BuilderHandler: app.BuilderHandler,
		Health:         health.NewService(app.Renderers),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"object_store": cfg.ObjectStoreType,
		"render_cache": app.Cache != nil,
		"renderers":    app.Renderers.List(),
	})
	return app, nil
}

// BuildStore selects the export destination from configuration.
func BuildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case "minio":
		return miniostore.New(ctx, miniostore.Config{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			Bucket:    cfg.MinIOBucket,
			Prefix:    cfg.S3Prefix,
			UseSSL:    cfg.MinIOUseSSL,
		})
	case "", "local":
		return localstore.New(cfg.ExportDir), nil
	default:
		return nil, fmt.Errorf("unknown OBJECT_STORE %q", cfg.ObjectStoreType)
	}
}

// BuildCache returns a Redis render cache when REDIS_ADDR is set.
func BuildCache(cfg config.Config) cache.DocumentCache {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return cache.NewRedisCache(client, "", cfg.RenderCacheTTL)
}
