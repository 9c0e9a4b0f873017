// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "glslpp/internal/adapters/config"
	_ "glslpp/internal/adapters/fs"
	_ "glslpp/internal/adapters/logger"
	// Register app nodes.
	_ "glslpp/internal/app"
)
