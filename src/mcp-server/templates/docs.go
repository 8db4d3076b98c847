// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files:
// the client instructions, the input format documentation and the command help text.
//
// [MagicEmbed] is the default [EmbedFS] implementation.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/x509-cert-viewer/src/mcp-server/templates"
//
//	entries, err := templates.MagicEmbed.ReadDir(".")
//	if err != nil {
//		return fmt.Errorf("failed to list templates: %w", err)
//	}
package templates
