// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinenv/internal/adapters/cas"
	_ "go.trai.ch/pinenv/internal/adapters/config"
	_ "go.trai.ch/pinenv/internal/adapters/dotenv"
	_ "go.trai.ch/pinenv/internal/adapters/fs"
	_ "go.trai.ch/pinenv/internal/adapters/lockfile"
	_ "go.trai.ch/pinenv/internal/adapters/logger"
	_ "go.trai.ch/pinenv/internal/adapters/python"
	_ "go.trai.ch/pinenv/internal/adapters/shell"
	_ "go.trai.ch/pinenv/internal/adapters/venv"
	// Register app and engine nodes.
	_ "go.trai.ch/pinenv/internal/app"
	_ "go.trai.ch/pinenv/internal/engine/locker"
	_ "go.trai.ch/pinenv/internal/engine/pip"
)
