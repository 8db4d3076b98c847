// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs turns certificate input into raw DER bytes for the viewer.
// It classifies text as [PEM], bare Base64 or bare hex, reads files by
// extension (.pem, .crt and .cer as text, anything else as binary DER),
// splits multi-certificate PEM bundles and unwraps [PKCS7] signed-data
// bundles. It also rebuilds the PEM form of DER bytes for display.
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
