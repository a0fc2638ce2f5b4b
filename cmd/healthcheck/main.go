// main.go
//
// REST data service for medicamentos, compuestos and the compounds each medicamento contains
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of REST-Api-NoSQL.
// REST-Api-NoSQL is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// REST-Api-NoSQL is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with REST-Api-NoSQL.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/database"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/services"
	"github.com/Rosvend/REST-Api-NoSQL/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the JSON result, so only warnings go to the log
	log, err := logging.New(cfg.Env, "warn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var result services.HealthCheckResult

	store, closeStore, err := database.ConnectStore(ctx, cfg, log)
	if err != nil {
		result = services.HealthCheckResult{
			Status:       "unhealthy",
			Database:     "unreachable",
			ErrorMessage: fmt.Sprintf("Database connection failed: %v", err),
		}
	} else {
		result = services.HealthCheck(ctx, cfg, store, log)
	}

	// The service itself must be listening too
	if err := utils.PingLocalPort(cfg.Port); err != nil {
		result.Status = "unhealthy"
		if result.Details == nil {
			result.Details = make(map[string]string)
		}
		result.Details["server_ping_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Server not listening on port %s", cfg.Port)
		}
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal health check result: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if !result.Healthy() {
		closeAndExit(closeStore, 1)
	}
	closeAndExit(closeStore, 0)
}

// closeAndExit releases the store before os.Exit skips the deferred calls
func closeAndExit(closeStore func(context.Context) error, code int) {
	if closeStore != nil {
		_ = closeStore(context.Background())
	}
	os.Exit(code)
}
