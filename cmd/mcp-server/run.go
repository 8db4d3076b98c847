// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

func main() { os.Exit(exit(os.Stderr, mcpserver.Run(version))) }

// exit reports err on w and returns the process exit code.
func exit(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "Server error: %v\n", err)
	return 1
}
