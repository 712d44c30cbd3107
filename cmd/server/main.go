// Command server runs the macrolog HTTP API: auth, food log entries,
// weekly statistics, goal settings and the admin overview.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/macrolog/macrolog-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
