// Command devicedetector serves the device classifier over HTTP.
//
// Configuration comes from the environment (and an optional .env file):
//
//	APP_ENV                  development | staging | production
//	LOG_LEVEL                debug | info | warn | error
//	DEVICE_KEYWORDS_FILE     YAML file with tv/tablet/mobile/desktop groups
//	DEVICE_*_KEYWORDS        whitespace-separated overrides per group
//	HTTP_ADDR                listen address, default :8080
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/devicedetector/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
