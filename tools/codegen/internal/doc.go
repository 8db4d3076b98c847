// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codegen provides code generation utilities for the OID registry.
//
// It renders the lookup tables of the oids package (signature and public key
// algorithms, distinguished name attributes, extensions, extended key usages,
// access methods and named curves) from the JSON configuration in
// config/oids.json through the templates/registry.go.tmpl template. Every
// entry is validated before any code is written, and the output is passed
// through go/format.
package codegen
