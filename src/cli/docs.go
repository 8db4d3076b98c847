// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of the X.509 certificate viewer.
// It implements a Cobra command whose flags are bound through Viper to
// X509VIEW_* environment variables and an optional configuration file. Input
// files are parsed concurrently by a bounded errgroup and rendered in input
// order as text, markdown table, JSON, YAML or a generic ASN.1 dump.
package cli
