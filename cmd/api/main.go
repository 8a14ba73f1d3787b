package main

import (
	"context"
	"os"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		telemetry.Error("bootstrap.failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("server.stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
