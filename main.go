package main

import (
	"honeydew-api/core/logger"
	"honeydew-api/core/server"
)

// @title HoneyDew API
// @version 1.0
// @description API backend for HoneyDew - household chores, crews and meeting planning

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
