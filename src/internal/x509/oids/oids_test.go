// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package oids_test

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/oids"
)

func TestLookups(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(string) string
		oid    string
		want   string
	}{
		{"SHA256withRSA", oids.SignatureAlgorithm, "1.2.840.113549.1.1.11", "SHA256withRSA"},
		{"SM3withSM2", oids.SignatureAlgorithm, "1.2.156.10197.1.501", "SM3withSM2"},
		{"Unknown signature", oids.SignatureAlgorithm, "1.2.3.4", "1.2.3.4"},
		{"RSA key", oids.PublicKeyAlgorithm, oids.RSAEncryption, "RSA"},
		{"SM2 key", oids.PublicKeyAlgorithm, oids.SM2, "SM2"},
		{"Common name", oids.Attribute, "2.5.4.3", "CN"},
		{"Email address", oids.Attribute, "1.2.840.113549.1.9.1", "emailAddress"},
		{"Unknown attribute", oids.Attribute, "2.5.4.99", "2.5.4.99"},
		{"Key usage", oids.Extension, oids.KeyUsage, "keyUsage"},
		{"SCT list", oids.Extension, oids.SCTList, "signedCertificateTimestampList"},
		{"OCSP", oids.AccessMethod, "1.3.6.1.5.5.7.48.1", "OCSP"},
		{"CA Issuers", oids.AccessMethod, "1.3.6.1.5.5.7.48.2", "CA Issuers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lookup(tt.oid))
		})
	}
}

func TestLookupExtKeyUsage(t *testing.T) {
	label, ok := oids.LookupExtKeyUsage("1.3.6.1.5.5.7.3.1")
	assert.True(t, ok)
	assert.Equal(t, "TLS Web Server Authentication", label)

	_, ok = oids.LookupExtKeyUsage("1.2.3")
	assert.False(t, ok)
}

func TestLookupPublicKeyAlgorithm(t *testing.T) {
	_, ok := oids.LookupPublicKeyAlgorithm(oids.ECPublicKey)
	assert.True(t, ok)

	_, ok = oids.LookupPublicKeyAlgorithm("1.2.3.4")
	assert.False(t, ok)
}

func TestCurves(t *testing.T) {
	tests := []struct {
		oid   string
		name  string
		label string
		bits  int
	}{
		{"1.3.132.0.33", "P-224", "P-224 (secp224r1)", 224},
		{"1.2.840.10045.3.1.7", "P-256", "P-256 (secp256r1)", 256},
		{"1.3.132.0.34", "P-384", "P-384 (secp384r1)", 384},
		{"1.3.132.0.35", "P-521", "P-521 (secp521r1)", 521},
		{oids.SM2, "SM2", "SM2", 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := oids.LookupCurve(tt.oid)
			assert.True(t, ok)
			assert.Equal(t, tt.label, c.Label())
			assert.Equal(t, tt.bits, c.Bits)

			byName, ok := oids.CurveByName(tt.name)
			assert.True(t, ok)
			assert.Equal(t, c, byName)
		})
	}

	_, ok := oids.LookupCurve("1.3.132.0.10")
	assert.False(t, ok)
	_, ok = oids.CurveByName("secp256k1")
	assert.False(t, ok)
}

// Constants must stay in sync with the encoding/asn1 rendering used by the decoders.
func TestConstantsAreDottedDecimal(t *testing.T) {
	id := asn1.ObjectIdentifier{1, 2, 156, 10197, 1, 301}
	assert.Equal(t, oids.SM2, id.String())

	id = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 11129, 2, 4, 2}
	assert.Equal(t, oids.SCTList, id.String())
}
