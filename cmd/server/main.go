// Command server runs the front GraphQL gateway.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/morningfm/front/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("front: %v", err)
	}
}
