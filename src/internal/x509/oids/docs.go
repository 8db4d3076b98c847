// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package oids holds the read-only [OID] registries used to label
// [X.509] certificate fields: signature and public key algorithms,
// distinguished name attributes, extensions, extended key usage purposes,
// access methods and named elliptic curves.
//
// The tables live in registry_gen.go, generated from
// tools/codegen/config/oids.json. They are never modified after package
// initialization and are safe for concurrent use. Lookups of unknown OIDs
// fall back to the dotted-decimal string itself.
//
// [OID]: https://grokipedia.com/page/Object_identifier
// [X.509]: https://grokipedia.com/page/X.509
package oids

//go:generate go run ../../../../tools/codegen
