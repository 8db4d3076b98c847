// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for the [X509] certificate viewer.
//
// The server speaks the Model Context Protocol on stdio and exposes three tools:
//   - parse_certificate: decode a certificate into a text, table, JSON or YAML record
//   - format_dn: format the subject or issuer name in certificate order
//   - decode_asn1: dump the generic ASN.1 structure of DER input
//
// and four resources: config://template, info://version,
// schema://certificate-record and docs://formats.
//
// Servers are assembled with [ServerBuilder]; [Run] wires the default tools,
// resources and instructions behind a cobra command with --config and
// --instructions flags. Handler logs are structured JSON on stderr so stdout
// stays reserved for the protocol.
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
