// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tiago/internal/adapters/cache"
	_ "go.trai.ch/tiago/internal/adapters/config"
	_ "go.trai.ch/tiago/internal/adapters/logger"
	_ "go.trai.ch/tiago/internal/adapters/share"
	_ "go.trai.ch/tiago/internal/adapters/xacro"
	// Register app nodes.
	_ "go.trai.ch/tiago/internal/app"
)
