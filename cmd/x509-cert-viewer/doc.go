// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-cert-viewer is a command-line tool that decodes X.509 certificates
// into a readable record: version, serial number, signature algorithm,
// issuer and subject names, validity, public key, extensions and
// fingerprints. Certificates whose keys crypto/x509 does not support, such
// as SM2, are decoded by a manual ASN.1 walk.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-viewer/cmd/x509-cert-viewer@latest
//
// # Usage
//
//	x509-cert-viewer [FLAGS] FILE...
//
// FILE is PEM, bare Base64 or bare hex text when it ends in .pem, .crt or
// .cer and binary DER otherwise. "-" reads text from standard input.
//
// # Flags
//
//	-f, --format     Output format: text, table, json, yaml or asn1 (default: text)
//	-b, --bundle     Decode every certificate of a PEM or PKCS#7 bundle
//	-o, --output     Destination file (default: stdout)
//	-w, --workers    Number of inputs parsed concurrently (default: GOMAXPROCS)
//	    --max-depth  Maximum ASN.1 nesting depth (default: 64)
//	    --max-size   Maximum input size in bytes (default: 1048576)
//	    --config     Configuration file (YAML, JSON or TOML)
//
// Every flag can also be set through an X509VIEW_ environment variable, for
// example X509VIEW_FORMAT=json or X509VIEW_MAX_DEPTH=32.
//
// # Examples
//
// Show a certificate:
//
//	x509-cert-viewer leaf.pem
//
// Produce JSON for several files:
//
//	x509-cert-viewer --format json a.crt b.der > records.json
//
// Inspect every certificate of a chain as markdown tables:
//
//	x509-cert-viewer --bundle --format table chain.pem
//
// Dump the raw ASN.1 structure:
//
//	openssl x509 -in leaf.pem | x509-cert-viewer --format asn1 -
//
// # Exit status
//
// 0 on success, 1 when at least one input failed to decode, 2 on usage or
// configuration errors and 130 when interrupted.
package main
