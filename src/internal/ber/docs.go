// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ber implements a schema-agnostic reader for [ASN.1] tag-length-value
// encodings as produced by [BER] and [DER].
//
// Decode turns a byte buffer into a tree of Node values. Every node keeps the
// exact content span it was decoded from, and constructed nodes carry their
// children in encoded order. The reader supports the high-tag-number form and
// both short and long definite lengths. Indefinite lengths are rejected since
// certificates are always DER.
//
// Nesting depth is attacker controlled, so it is bounded by [Decoder.MaxDepth]
// (default [DefaultMaxDepth]). Exceeding the bound fails with [ErrDepthExceeded].
//
// Node.Value converts a node into a closed set of typed values (Boolean,
// Integer, OID, Sequence, ContextSpecific and so on) so that consumers can use
// exhaustive type switches instead of probing tags by hand.
//
// [ASN.1]: https://grokipedia.com/page/ASN.1
// [BER]: https://grokipedia.com/page/X.690#BER_encoding
// [DER]: https://grokipedia.com/page/X.690#DER_encoding
package ber
