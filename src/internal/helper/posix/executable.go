// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// ExecutableName returns the base name of os.Args[0] without a trailing
// ".exe", or fallback when os.Args[0] is unavailable.
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	return BaseName(os.Args[0], fallback)
}

// BaseName returns the last path element of path with a trailing ".exe"
// removed. Both / and \ separate elements. It returns fallback when no name
// remains.
func BaseName(path, fallback string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return fallback
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." || name == ".." {
		return fallback
	}
	return name
}
