// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"

	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/mcp-server/templates"
)

// inputFormats lists the accepted certificate encodings.
var inputFormats = []string{"pem", "base64", "hex", "der"}

// handleConfigResource returns an example configuration holding the defaults.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest, env *Env) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config template")
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource returns server metadata, the registered tools and
// the supported formats.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest, env *Env) ([]mcp.ResourceContents, error) {
	type toolInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	tools := make([]toolInfo, 0, len(env.Tools))
	for _, t := range env.Tools {
		tools = append(tools, toolInfo{Name: t.Tool.Name, Description: t.Tool.Description})
	}

	versionInfo := struct {
		Name          string     `json:"name"`
		Version       string     `json:"version"`
		Type          string     `json:"type"`
		Tools         []toolInfo `json:"tools"`
		InputFormats  []string   `json:"inputFormats"`
		OutputFormats []string   `json:"outputFormats"`
		Limits        struct {
			MaxDepth     int `json:"maxDepth"`
			MaxInputSize int `json:"maxInputSize"`
		} `json:"limits"`
	}{
		Name:          serverName,
		Version:       env.Version,
		Type:          "MCP Server",
		Tools:         tools,
		InputFormats:  inputFormats,
		OutputFormats: formatNames(),
	}
	opts := env.Parser.Options()
	versionInfo.Limits.MaxDepth = opts.MaxDepth
	versionInfo.Limits.MaxInputSize = opts.MaxInputSize

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal version info")
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleRecordSchemaResource returns the JSON schema of a rendered record.
func handleRecordSchemaResource(ctx context.Context, request mcp.ReadResourceRequest, env *Env) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriRecordSchema,
			MIMEType: "application/schema+json",
			Text:     x509viewer.RecordSchema,
		},
	}, nil
}

// handleFormatsResource serves the embedded input format documentation.
func handleFormatsResource(ctx context.Context, request mcp.ReadResourceRequest, env *Env) ([]mcp.ResourceContents, error) {
	content, err := env.Embed.ReadFile(templates.Formats)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read formats document")
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriFormats,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
