// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"math/big"
	"net"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	oidSM2          = asn1.ObjectIdentifier{1, 2, 156, 10197, 1, 301}
	oidSM3WithSM2   = asn1.ObjectIdentifier{1, 2, 156, 10197, 1, 501}
	oidRSA          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidDSA          = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}
	oidECPublicKey  = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidP384         = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidCommonName   = asn1.ObjectIdentifier{2, 5, 4, 3}
	oidOrganization = asn1.ObjectIdentifier{2, 5, 4, 10}
	oidKeyUsage     = asn1.ObjectIdentifier{2, 5, 29, 15}
	oidBasicCons    = asn1.ObjectIdentifier{2, 5, 29, 19}
	oidPrivateExt   = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 1}
)

var (
	tagVersion   = cbasn1.Tag(0).Constructed().ContextSpecific()
	tagIssuerUID = cbasn1.Tag(1).ContextSpecific()
	tagSubjUID   = cbasn1.Tag(2).ContextSpecific()
	tagExts      = cbasn1.Tag(3).Constructed().ContextSpecific()
)

// encode runs f against a fresh builder and returns the bytes.
func encode(f func(b *cryptobyte.Builder)) []byte {
	var b cryptobyte.Builder
	f(&b)
	return b.BytesOrPanic()
}

func element(tag cbasn1.Tag, content []byte) []byte {
	return encode(func(b *cryptobyte.Builder) {
		b.AddASN1(tag, func(c *cryptobyte.Builder) { c.AddBytes(content) })
	})
}

func sequence(children ...[]byte) []byte {
	return encode(func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(c *cryptobyte.Builder) {
			for _, child := range children {
				c.AddBytes(child)
			}
		})
	})
}

func oid(id asn1.ObjectIdentifier) []byte {
	return encode(func(b *cryptobyte.Builder) { b.AddASN1ObjectIdentifier(id) })
}

func integer(v int64) []byte {
	return encode(func(b *cryptobyte.Builder) { b.AddASN1Int64(v) })
}

func utf8(s string) []byte { return element(cbasn1.UTF8String, []byte(s)) }

func version(v int64) []byte { return element(tagVersion, integer(v)) }

func algorithm(id asn1.ObjectIdentifier, params ...[]byte) []byte {
	return sequence(append([][]byte{oid(id)}, params...)...)
}

type attr struct {
	id    asn1.ObjectIdentifier
	value string
}

func name(attrs ...attr) []byte {
	rdns := make([][]byte, 0, len(attrs))
	for _, a := range attrs {
		rdns = append(rdns, element(cbasn1.SET, sequence(oid(a.id), utf8(a.value))))
	}
	return sequence(rdns...)
}

func utcTime(s string) []byte         { return element(cbasn1.UTCTime, []byte(s)) }
func generalizedTime(s string) []byte { return element(cbasn1.GeneralizedTime, []byte(s)) }

func bitString(b []byte) []byte {
	return encode(func(c *cryptobyte.Builder) { c.AddASN1BitString(b) })
}

func spki(alg []byte, key []byte) []byte { return sequence(alg, bitString(key)) }

func extension(id asn1.ObjectIdentifier, critical bool, value []byte) []byte {
	return encode(func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(c *cryptobyte.Builder) {
			c.AddASN1ObjectIdentifier(id)
			if critical {
				c.AddASN1Boolean(true)
			}
			c.AddASN1OctetString(value)
		})
	})
}

func extensions(exts ...[]byte) []byte { return element(tagExts, sequence(exts...)) }

// sm2Point is an uncompressed point: 0x04 followed by 32-byte X and Y.
func sm2Point() []byte {
	p := make([]byte, 65)
	p[0] = 0x04
	for i := 1; i < len(p); i++ {
		p[i] = byte(i)
	}
	return p
}

// certFields holds the encoded TBSCertificate fields of a hand-built
// certificate. A nil field is left out.
type certFields struct {
	version   []byte
	serial    []byte
	signature []byte
	issuer    []byte
	validity  []byte
	subject   []byte
	spki      []byte
	trailing  [][]byte
}

// sm2Fields returns the fields of a v3 SM2 certificate with keyUsage,
// basicConstraints and one private extension.
func sm2Fields() certFields {
	return certFields{
		version:   version(2),
		serial:    element(cbasn1.INTEGER, []byte{0x00, 0x8b, 0x27, 0x01}),
		signature: algorithm(oidSM3WithSM2),
		issuer:    name(attr{oidCommonName, "SM2 Root"}, attr{oidOrganization, "Example"}),
		validity:  sequence(utcTime("250101000000Z"), utcTime("350101000000Z")),
		subject:   name(attr{oidCommonName, "sm2.example.cn"}),
		spki:      spki(algorithm(oidSM2), sm2Point()),
		trailing: [][]byte{extensions(
			extension(oidKeyUsage, true, []byte{0x03, 0x02, 0x02, 0x84}),
			extension(oidBasicCons, false, sequence()),
			extension(oidPrivateExt, false, utf8("hello")),
		)},
	}
}

func (f certFields) encode() []byte {
	var tbs [][]byte
	for _, field := range [][]byte{f.version, f.serial, f.signature, f.issuer, f.validity, f.subject, f.spki} {
		if field != nil {
			tbs = append(tbs, field)
		}
	}
	tbs = append(tbs, f.trailing...)

	return sequence(
		sequence(tbs...),
		algorithm(oidSM3WithSM2),
		bitString([]byte{0x30, 0x00}),
	)
}

var rsaKey = sync.OnceValues(func() (*rsa.PrivateKey, error) {
	return rsa.GenerateKey(rand.Reader, 2048)
})

// rsaCertificate returns a self-signed RSA-2048 v3 certificate.
func rsaCertificate(t *testing.T) []byte {
	t.Helper()

	key, err := rsaKey()
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(0x0100),
		Subject: pkix.Name{
			CommonName:         "RSA Test Root",
			Organization:       []string{"Example Org"},
			OrganizationalUnit: []string{"Eng", "Ops"},
			Country:            []string{"US"},
		},
		NotBefore:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:              time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            3,
		DNSNames:              []string{"example.com"},
		EmailAddresses:        []string{"admin@example.com"},
		IPAddresses:           []net.IP{net.ParseIP("192.0.2.10").To4(), net.ParseIP("2001:db8::1")},
		URIs:                  []*url.URL{{Scheme: "https", Host: "example.com", Path: "/id"}},
		CRLDistributionPoints: []string{"http://crl.example.com/root.crl"},
		OCSPServer:            []string{"http://ocsp.example.com"},
		IssuingCertificateURL: []string{"http://ca.example.com/root.crt"},
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return der
}

func readGooglePEM(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/google.pem")
	require.NoError(t, err)
	return data
}

func googleDER(t *testing.T) []byte {
	t.Helper()
	block, _ := pem.Decode(readGooglePEM(t))
	require.NotNil(t, block)
	return block.Bytes
}

// ecCertificate returns a self-signed certificate for a key on curve and the
// subjectPublicKey BIT STRING payload it carries.
func ecCertificate(t *testing.T, curve elliptic.Curve) (der, point []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(7),
		Subject:      pkix.Name{CommonName: curve.Params().Name},
		NotBefore:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	der, err = x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	var info struct {
		Algorithm pkix.AlgorithmIdentifier
		PublicKey asn1.BitString
	}
	_, err = asn1.Unmarshal(cert.RawSubjectPublicKeyInfo, &info)
	require.NoError(t, err)

	return der, info.PublicKey.Bytes
}

// signedDataBundle wraps ders in a certs-only PKCS#7 SignedData with empty
// digestAlgorithms, crls and signerInfos.
func signedDataBundle(ders ...[]byte) []byte {
	return encode(func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(ci *cryptobyte.Builder) {
			ci.AddASN1ObjectIdentifier(asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2})
			ci.AddASN1(cbasn1.Tag(0).Constructed().ContextSpecific(), func(content *cryptobyte.Builder) {
				content.AddASN1(cbasn1.SEQUENCE, func(sd *cryptobyte.Builder) {
					sd.AddASN1Int64(1)
					sd.AddASN1(cbasn1.SET, func(*cryptobyte.Builder) {})
					sd.AddASN1(cbasn1.SEQUENCE, func(inner *cryptobyte.Builder) {
						inner.AddASN1ObjectIdentifier(asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1})
					})
					sd.AddASN1(cbasn1.Tag(0).Constructed().ContextSpecific(), func(certs *cryptobyte.Builder) {
						for _, der := range ders {
							certs.AddBytes(der)
						}
					})
					sd.AddASN1(cbasn1.Tag(1).Constructed().ContextSpecific(), func(*cryptobyte.Builder) {})
					sd.AddASN1(cbasn1.SET, func(*cryptobyte.Builder) {})
				})
			})
		})
	})
}
