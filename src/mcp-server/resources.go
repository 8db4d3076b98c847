// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	uriConfigTemplate = "config://template"
	uriVersion        = "info://version"
	uriRecordSchema   = "schema://certificate-record"
	uriFormats        = "docs://formats"
)

// createResources creates and returns all MCP resource definitions with their handlers.
//
// Resources:
//   - config://template: Example configuration with the default values
//   - info://version: Server name, version, tools and supported formats
//   - schema://certificate-record: JSON schema of parse_certificate JSON output
//   - docs://formats: Accepted input formats and limits (embedded markdown)
func createResources() []ResourceDefinition {
	return []ResourceDefinition{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Example server configuration with default values"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(uriVersion, "Version Information",
				mcp.WithResourceDescription("Server version, tools and supported formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(uriRecordSchema, "Certificate Record Schema",
				mcp.WithResourceDescription("JSON schema of the record returned by parse_certificate in json format"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleRecordSchemaResource,
		},
		{
			Resource: mcp.NewResource(uriFormats, "Certificate Formats",
				mcp.WithResourceDescription("Accepted certificate input formats, limits and output formats"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleFormatsResource,
		},
	}
}
