// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
// It is the version package default until Run is called with another value.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with the certificate viewer tools and resources.
//
// Parameters:
//   - version: Version string to report to clients (e.g., "0.1.0")
//
// Returns:
//   - error: Instruction rendering, command setup, configuration or runtime error
//
// Server Lifecycle:
//  1. Render the client instructions from the registered tools
//  2. Build the cobra command (flags --config and --instructions)
//  3. Execute it with a context cancelled on SIGINT or SIGTERM
//  4. Serve stdio until EOF or cancellation
func Run(version string) error {
	appVersion = version

	tools := createTools()
	instructions, err := loadInstructions(templates.MagicEmbed, tools)
	if err != nil {
		return errors.Wrap(err, "failed to load instructions")
	}

	framework := NewCLIFramework("", ServerDependencies{
		Embed:        templates.MagicEmbed,
		Version:      version,
		Logger:       logger.NewMCPLogger(os.Stderr, false),
		Tools:        tools,
		Resources:    createResources(),
		Instructions: instructions,
	})

	rootCmd, err := framework.BuildRootCommand()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
