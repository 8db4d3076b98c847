// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server runs the X.509 certificate viewer as a Model Context Protocol
// server on standard input and output.
//
// # Usage
//
//	mcp-server [--config FILE] [--instructions]
//
// Without flags the server starts and serves until its input is closed or it
// receives SIGINT or SIGTERM. --instructions prints the workflows sent to
// clients and exits.
//
// # Configuration
//
// The file named by --config, or by MCP_X509_CONFIG_FILE when the flag is not
// set, is read as YAML (.yaml, .yml) or JSON (any other extension):
//
//	defaults:
//	  format: text          # text, table, json or yaml
//	  maxDepth: 64          # ASN.1 nesting bound
//	  maxInputSize: 1048576 # bytes
//	log:
//	  level: info           # debug, info, warn or error
//
// Missing and non-positive values keep their defaults. Logs are written to
// standard error as JSON lines.
package main
