// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/eventbus"
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/fs"
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/logger"
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/metrics"
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/settings"
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/spool"
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/statscache"
	_ "github.com/llegomark/better-nginx-cache/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/llegomark/better-nginx-cache/internal/app"
	_ "github.com/llegomark/better-nginx-cache/internal/engine/configuration"
	_ "github.com/llegomark/better-nginx-cache/internal/engine/decision"
	_ "github.com/llegomark/better-nginx-cache/internal/engine/purger"
	_ "github.com/llegomark/better-nginx-cache/internal/engine/registrar"
	_ "github.com/llegomark/better-nginx-cache/internal/engine/scanner"
)
