// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the Logger interface used by the certificate viewer
// binaries and two implementations: CLILogger for human-readable command-line
// output and MCPLogger, a zap-backed structured JSON logger for the MCP server.
package logger
