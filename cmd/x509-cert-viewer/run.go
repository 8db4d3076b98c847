// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/cli"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-cert-viewer/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() { os.Exit(run()) }

// run executes the CLI and returns the process exit code.
func run() int {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- cli.Execute(ctx, version, log) }()

	select {
	case err := <-done:
		return exitCode(log, err)
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return 130 // Standard exit code for SIGINT
	}
}

// exitCode reports err and maps it to an exit status: 0 on success, 1 when
// some inputs failed to decode, 2 on usage or configuration errors.
func exitCode(log logger.Logger, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrInputsFailed):
		log.Printf("Error: %v", err)
		return 1
	default:
		log.Printf("Error: %v", err)
		return 2
	}
}
