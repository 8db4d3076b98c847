// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509viewer decodes X.509 certificates into a structured [Record]
// suitable for display.
//
// A [Parser] turns PEM, Base64, hex or DER input into a [Record] holding the
// version, serial number, signature algorithm, issuer and subject names,
// validity interval, public key parameters, extensions and fingerprints.
//
// Two extraction strategies produce the same record shape:
//
//   - library: used when the subjectPublicKeyInfo algorithm is RSA, EC,
//     Ed25519 or X25519 and crypto/x509 accepts the certificate.
//   - manual: a positional walk over the TBSCertificate tree decoded by the
//     ber package, used for every other key algorithm (for example SM2) and
//     whenever the library strategy fails.
//
// Extensions are decoded by a table keyed on the extension OID. An extension
// that cannot be decoded is left out of the record; it never fails the parse.
//
// Example usage:
//
//	p := x509viewer.New(x509viewer.WithMaxDepth(32))
//	rec, err := p.Parse(pemBytes)
//	if err != nil {
//		var verr *x509viewer.Error
//		if errors.As(err, &verr) {
//			log.Printf("%s failed during %s", verr.Kind, verr.Phase)
//		}
//		return err
//	}
//	fmt.Println(x509viewer.FormatDN(rec.Subject))
//
// A Parser holds no mutable state and may be shared by multiple goroutines.
package x509viewer
