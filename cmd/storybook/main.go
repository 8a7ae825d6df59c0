// Package main runs the component documentation harness.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/vtnds/internal/platform/config"
)

func main() {
	log.SetPrefix("[STORYBOOK] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		config.Exitf("storybook: %v", err)
	}
}
