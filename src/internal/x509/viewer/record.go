// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import "time"

// Strategy names the extraction path that produced a [Record].
type Strategy string

const (
	// StrategyLibrary marks records extracted through crypto/x509.
	StrategyLibrary Strategy = "library"

	// StrategyManual marks records extracted by walking the decoded TBSCertificate.
	StrategyManual Strategy = "manual"
)

// Record is the decoded, display-oriented view of one certificate.
type Record struct {
	Version            string             `json:"version" yaml:"version"`
	SerialNumber       string             `json:"serialNumber" yaml:"serialNumber"`
	SignatureAlgorithm string             `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	Issuer             *DistinguishedName `json:"issuer" yaml:"issuer"`
	Subject            *DistinguishedName `json:"subject" yaml:"subject"`
	ValidFrom          time.Time          `json:"validFrom" yaml:"validFrom"`
	ValidTo            time.Time          `json:"validTo" yaml:"validTo"`
	PublicKeyInfo      PublicKeyInfo      `json:"publicKeyInfo" yaml:"publicKeyInfo"`
	Extensions         []Extension        `json:"extensions" yaml:"extensions"`
	Fingerprints       Fingerprints       `json:"fingerprints" yaml:"fingerprints"`
	Raw                Raw                `json:"raw" yaml:"raw"`
	Strategy           Strategy           `json:"strategy" yaml:"strategy"`
}

// PublicKeyInfo describes the subject public key. Which optional fields are
// set depends on the algorithm: Exponent and Modulus for RSA, Curve for EC
// and SM2, PublicKeyHex for EC, SM2, Ed25519 and X25519.
type PublicKeyInfo struct {
	Algorithm    string `json:"algorithm" yaml:"algorithm"`
	Size         string `json:"size" yaml:"size"`
	Exponent     int    `json:"exponent,omitempty" yaml:"exponent,omitempty"`
	Modulus      string `json:"modulus,omitempty" yaml:"modulus,omitempty"`
	Curve        string `json:"curve,omitempty" yaml:"curve,omitempty"`
	PublicKeyHex string `json:"publicKeyHex,omitempty" yaml:"publicKeyHex,omitempty"`
}

// Extension is one decoded certificate extension.
//
// Value is the display text. KeyUsage and BasicConstraints additionally carry
// the structured result for those two extensions.
type Extension struct {
	Name             string            `json:"name" yaml:"name"`
	OID              string            `json:"oid" yaml:"oid"`
	Critical         bool              `json:"critical" yaml:"critical"`
	Value            string            `json:"value" yaml:"value"`
	KeyUsage         []string          `json:"keyUsage,omitempty" yaml:"keyUsage,omitempty"`
	BasicConstraints *BasicConstraints `json:"basicConstraints,omitempty" yaml:"basicConstraints,omitempty"`
}

// BasicConstraints is the decoded basicConstraints extension.
type BasicConstraints struct {
	CA                bool `json:"cA" yaml:"cA"`
	PathLenConstraint *int `json:"pathLenConstraint,omitempty" yaml:"pathLenConstraint,omitempty"`
}

// Fingerprints holds digests of the DER encoding as uppercase hex with a space
// between bytes.
type Fingerprints struct {
	MD5    string `json:"md5" yaml:"md5"`
	SHA1   string `json:"sha1" yaml:"sha1"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// Raw holds re-encodings of the decoded DER bytes.
type Raw struct {
	PEM    string `json:"pem" yaml:"pem"`
	DERHex string `json:"derHex" yaml:"derHex"`
}

// Extension returns the first extension with the given name, or nil.
func (r *Record) Extension(name string) *Extension {
	for i := range r.Extensions {
		if r.Extensions[i].Name == name {
			return &r.Extensions[i]
		}
	}
	return nil
}
