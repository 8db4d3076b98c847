// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix derives [POSIX]-style program names for usage lines.
//
// The certificate viewer binaries name themselves after the file they were
// started from, so a renamed or .exe-suffixed binary still prints matching
// help text:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.ExecutableName("x509-cert-viewer") + " [flags] FILE...",
//	}
//
// Paths are split on both / and \ so Windows-style argv[0] values also
// resolve when the binary runs under a [Unix-like] emulation layer.
//
// [POSIX]: https://grokipedia.com/page/POSIX
// [Unix-like]: https://grokipedia.com/page/Unix-like
package posix
