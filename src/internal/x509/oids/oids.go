// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package oids

// Object identifiers the certificate walker matches on directly.
const (
	RSAEncryption = "1.2.840.113549.1.1.1"
	ECPublicKey   = "1.2.840.10045.2.1"
	SM2           = "1.2.156.10197.1.301"
	Ed25519       = "1.3.101.112"
	X25519        = "1.3.101.110"

	SubjectKeyIdentifier   = "2.5.29.14"
	KeyUsage               = "2.5.29.15"
	SubjectAltName         = "2.5.29.17"
	IssuerAltName          = "2.5.29.18"
	BasicConstraints       = "2.5.29.19"
	CRLDistributionPoints  = "2.5.29.31"
	CertificatePolicies    = "2.5.29.32"
	AuthorityKeyIdentifier = "2.5.29.35"
	ExtKeyUsage            = "2.5.29.37"
	AuthorityInfoAccess    = "1.3.6.1.5.5.7.1.1"
	SCTList                = "1.3.6.1.4.1.11129.2.4.2"

	QualifierCPS        = "1.3.6.1.5.5.7.2.1"
	QualifierUserNotice = "1.3.6.1.5.5.7.2.2"
)

// Curve describes a named elliptic curve.
type Curve struct {
	Name  string // short name, e.g. "P-256"
	Alias string // SEC 2 name, empty when there is none
	Bits  int
}

// Label returns the display name of the curve, e.g. "P-256 (secp256r1)".
func (c Curve) Label() string {
	if c.Alias == "" {
		return c.Name
	}
	return c.Name + " (" + c.Alias + ")"
}

func lookup(table map[string]string, oid string) string {
	if label, ok := table[oid]; ok {
		return label
	}
	return oid
}

// SignatureAlgorithm returns the label of a signature algorithm OID.
func SignatureAlgorithm(oid string) string { return lookup(signatureAlgorithms, oid) }

// PublicKeyAlgorithm returns the label of a public key algorithm OID.
func PublicKeyAlgorithm(oid string) string { return lookup(publicKeyAlgorithms, oid) }

// LookupPublicKeyAlgorithm is like PublicKeyAlgorithm but reports whether the OID is known.
func LookupPublicKeyAlgorithm(oid string) (string, bool) {
	label, ok := publicKeyAlgorithms[oid]
	return label, ok
}

// Attribute returns the short name of a distinguished name attribute type.
func Attribute(oid string) string { return lookup(attributes, oid) }

// Extension returns the name of a certificate extension.
func Extension(oid string) string { return lookup(extensions, oid) }

// LookupExtKeyUsage returns the label of an extended key usage purpose.
func LookupExtKeyUsage(oid string) (string, bool) {
	label, ok := extKeyUsages[oid]
	return label, ok
}

// AccessMethod returns the label of an authorityInfoAccess access method.
func AccessMethod(oid string) string { return lookup(accessMethods, oid) }

// LookupCurve returns the named curve for a curve parameter OID.
func LookupCurve(oid string) (Curve, bool) {
	c, ok := curves[oid]
	return c, ok
}

// CurveByName returns the registered curve with the given short name.
func CurveByName(name string) (Curve, bool) {
	for _, c := range curves {
		if c.Name == name {
			return c, true
		}
	}
	return Curve{}, false
}
