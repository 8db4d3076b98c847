// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/x509-cert-viewer/tools/codegen/internal"
)

func main() {
	if err := codegen.GenerateRegistry(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating OID registry: %v\n", err)
		os.Exit(1)
	}
}
