// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
)

// Tool names.
const (
	toolParseCertificate = "parse_certificate"
	toolFormatDN         = "format_dn"
	toolDecodeASN1       = "decode_asn1"
)

// DN field selectors accepted by format_dn.
const (
	fieldSubject = "subject"
	fieldIssuer  = "issuer"
)

// formatNames lists the output formats accepted by parse_certificate.
func formatNames() []string {
	names := make([]string, 0, len(x509viewer.Formats))
	for _, f := range x509viewer.Formats {
		names = append(names, string(f))
	}
	return names
}

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - parse_certificate: Decodes a certificate into a text, table, JSON or YAML record
//   - format_dn: Formats the subject or issuer name as "KEY=value, ..."
//   - decode_asn1: Dumps the generic ASN.1 structure of any DER input
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(toolParseCertificate,
				mcp.WithDescription("Decode an X.509 certificate into a readable record: version, serial, signature algorithm, names, validity, public key, extensions and fingerprints"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path, or inline PEM, Base64 or hex text"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'text', 'table', 'json' or 'yaml' (default from server configuration)"),
					mcp.Enum(formatNames()...),
				),
			),
			Handler: handleParseCertificate,
			Role:    "viewer",
		},
		{
			Tool: mcp.NewTool(toolFormatDN,
				mcp.WithDescription("Format the subject or issuer distinguished name of a certificate as KEY=value pairs in certificate order"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path, or inline PEM, Base64 or hex text"),
				),
				mcp.WithString("field",
					mcp.Description("Name to format: 'subject' or 'issuer' (default: subject)"),
					mcp.Enum(fieldSubject, fieldIssuer),
					mcp.DefaultString(fieldSubject),
				),
			),
			Handler: handleFormatDN,
			Role:    "dn",
		},
		{
			Tool: mcp.NewTool(toolDecodeASN1,
				mcp.WithDescription("Dump the generic ASN.1 TLV structure of DER data, showing class, tag, length and primitive values"),
				mcp.WithString("data",
					mcp.Required(),
					mcp.Description("File path, or inline PEM, Base64 or hex text"),
				),
			),
			Handler: handleDecodeASN1,
			Role:    "asn1",
		},
	}
}
