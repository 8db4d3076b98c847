// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer_test

import (
	"crypto/elliptic"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	x509certs "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/certs"
	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
)

func TestParseDER_RSA(t *testing.T) {
	der := rsaCertificate(t)

	rec, err := x509viewer.New().ParseDER(der)
	require.NoError(t, err)

	assert.Equal(t, x509viewer.StrategyLibrary, rec.Strategy)
	assert.Equal(t, "V3", rec.Version)
	assert.Equal(t, "0100", rec.SerialNumber)
	assert.Contains(t, rec.SignatureAlgorithm, "RSA")
	assert.Equal(t, "RSA", rec.PublicKeyInfo.Algorithm)
	assert.Equal(t, "2048 bits", rec.PublicKeyInfo.Size)
	assert.Equal(t, 65537, rec.PublicKeyInfo.Exponent)
	assert.Len(t, rec.PublicKeyInfo.Modulus, 512)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rec.ValidFrom)
	assert.Equal(t, time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC), rec.ValidTo)

	// The second OU overwrites the first and keeps its position.
	ou, ok := rec.Subject.Get("OU")
	require.True(t, ok)
	assert.Equal(t, "Ops", ou)
	assert.Equal(t, "CN=RSA Test Root, OU=Ops, O=Example Org, C=US", x509viewer.FormatDN(rec.Subject))

	md5Sum := md5.Sum(der)
	sha1Sum := sha1.Sum(der)
	sha256Sum := sha256.Sum256(der)
	assert.Equal(t, fmt.Sprintf("% X", md5Sum[:]), rec.Fingerprints.MD5)
	assert.Equal(t, fmt.Sprintf("% X", sha1Sum[:]), rec.Fingerprints.SHA1)
	assert.Equal(t, fmt.Sprintf("% X", sha256Sum[:]), rec.Fingerprints.SHA256)

	assert.Equal(t, strings.ToUpper(hex.EncodeToString(der)), rec.Raw.DERHex)
	block, _ := pem.Decode([]byte(rec.Raw.PEM))
	require.NotNil(t, block)
	assert.Equal(t, der, block.Bytes)

	ku := rec.Extension("keyUsage")
	require.NotNil(t, ku)
	assert.True(t, ku.Critical)
	assert.Equal(t, []string{"digitalSignature", "keyCertSign"}, ku.KeyUsage)

	bc := rec.Extension("basicConstraints")
	require.NotNil(t, bc)
	require.NotNil(t, bc.BasicConstraints)
	assert.True(t, bc.BasicConstraints.CA)
	require.NotNil(t, bc.BasicConstraints.PathLenConstraint)
	assert.Equal(t, 3, *bc.BasicConstraints.PathLenConstraint)

	san := rec.Extension("subjectAltName")
	require.NotNil(t, san)
	for _, want := range []string{
		"DNS: example.com",
		"Email: admin@example.com",
		"IP: 192.0.2.10",
		"IP: [IPv6]",
		"URI: https://example.com/id",
	} {
		assert.Contains(t, san.Value, want)
	}

	eku := rec.Extension("extKeyUsage")
	require.NotNil(t, eku)
	assert.Equal(t, "TLS Web Server Authentication", eku.Value)

	crl := rec.Extension("cRLDistributionPoints")
	require.NotNil(t, crl)
	assert.Equal(t, "http://crl.example.com/root.crl", crl.Value)

	aia := rec.Extension("authorityInfoAccess")
	require.NotNil(t, aia)
	assert.Equal(t, "OCSP: http://ocsp.example.com\nCA Issuers: http://ca.example.com/root.crt", aia.Value)
}

func TestParseDER_LibraryEC(t *testing.T) {
	tests := []struct {
		curve elliptic.Curve
		label string
		size  string
	}{
		{elliptic.P224(), "P-224 (secp224r1)", "224 bits"},
		{elliptic.P256(), "P-256 (secp256r1)", "256 bits"},
		{elliptic.P384(), "P-384 (secp384r1)", "384 bits"},
	}

	for _, tt := range tests {
		t.Run(tt.curve.Params().Name, func(t *testing.T) {
			der, point := ecCertificate(t, tt.curve)

			rec, err := x509viewer.New().ParseDER(der)
			require.NoError(t, err)

			assert.Equal(t, x509viewer.StrategyLibrary, rec.Strategy)
			assert.Equal(t, x509viewer.PublicKeyInfo{
				Algorithm:    "EC",
				Size:         tt.size,
				Curve:        tt.label,
				PublicKeyHex: strings.ToUpper(hex.EncodeToString(point)),
			}, rec.PublicKeyInfo)
		})
	}
}

func TestParse_Google(t *testing.T) {
	rec, err := x509viewer.New().Parse(readGooglePEM(t))
	require.NoError(t, err)

	assert.Equal(t, x509viewer.StrategyLibrary, rec.Strategy)
	assert.Equal(t, "V3", rec.Version)
	assert.Equal(t, "8B270E1EC0AACB550904C364EE3D1544", rec.SerialNumber)
	assert.Equal(t, "SHA256withRSA", rec.SignatureAlgorithm)
	assert.Equal(t, "CN=WR2, O=Google Trust Services, C=US", x509viewer.FormatDN(rec.Issuer))
	assert.Equal(t, "CN=www.google.com", x509viewer.FormatDN(rec.Subject))
	assert.Equal(t, "EC", rec.PublicKeyInfo.Algorithm)
	assert.Equal(t, "256 bits", rec.PublicKeyInfo.Size)
	assert.Equal(t, "P-256 (secp256r1)", rec.PublicKeyInfo.Curve)
	assert.True(t, strings.HasPrefix(rec.PublicKeyInfo.PublicKeyHex, "04A93AB50A810271B8"))

	names := make([]string, 0, len(rec.Extensions))
	for _, ext := range rec.Extensions {
		names = append(names, ext.Name)
	}
	assert.Equal(t, []string{
		"keyUsage",
		"extKeyUsage",
		"basicConstraints",
		"subjectKeyIdentifier",
		"authorityKeyIdentifier",
		"authorityInfoAccess",
		"subjectAltName",
		"certificatePolicies",
		"cRLDistributionPoints",
		"signedCertificateTimestampList",
	}, names)

	tests := []struct {
		name string
		want string
	}{
		{"keyUsage", "digitalSignature"},
		{"extKeyUsage", "TLS Web Server Authentication"},
		{"basicConstraints", "CA: false"},
		{"subjectKeyIdentifier", "1F E3 9C BA 51 B5 9E E2 CD 9A E3 E6 99 A8 3D B6 38 42 5A 26"},
		{"authorityKeyIdentifier", "Key ID: DE 1B 1E ED 79 15 D4 3E 37 24 C3 21 BB EC 34 39 6D 42 B2 30"},
		{"authorityInfoAccess", "OCSP: http://o.pki.goog/wr2\nCA Issuers: http://i.pki.goog/wr2.crt"},
		{"subjectAltName", "DNS: www.google.com"},
		{"certificatePolicies", "Policy OID: 2.23.140.1.2.1"},
		{"cRLDistributionPoints", "http://c.pki.goog/wr2/GSyT1N4PBrg.crl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := rec.Extension(tt.name)
			require.NotNil(t, ext)
			assert.Equal(t, tt.want, ext.Value)
		})
	}

	sct := rec.Extension("signedCertificateTimestampList")
	require.NotNil(t, sct)
	assert.Contains(t, sct.Value, "Log ID: lpdkv1VYl633Q4doNwhCd+nwOtX2pPM2bkakPw/KqcY=")
	assert.Contains(t, sct.Value, "Log ID: SZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MM=")
	assert.Contains(t, sct.Value, "Timestamp: 2025-11-24 09:41:07.322 UTC")
	assert.Contains(t, sct.Value, "Timestamp: 2025-11-24 09:41:07.288 UTC")
}

func TestParse_InputForms(t *testing.T) {
	der := googleDER(t)
	p := x509viewer.New()

	want, err := p.ParseDER(der)
	require.NoError(t, err)

	inputs := map[string]string{
		"PEM":          string(readGooglePEM(t)),
		"Single-line":  "-----BEGIN CERTIFICATE-----" + base64.StdEncoding.EncodeToString(der) + "-----END CERTIFICATE-----",
		"Base64":       base64.StdEncoding.EncodeToString(der),
		"Raw Base64":   base64.RawStdEncoding.EncodeToString(der),
		"Hex":          hex.EncodeToString(der),
		"Spaced hex":   fmt.Sprintf("% X", der),
		"Padded input": "\n\n  " + base64.StdEncoding.EncodeToString(der) + "  \n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			rec, err := p.Parse([]byte(input))
			require.NoError(t, err)
			assert.Equal(t, want.Fingerprints, rec.Fingerprints)
			assert.Equal(t, want.Raw, rec.Raw)
		})
	}
}

func TestParseFile(t *testing.T) {
	der := googleDER(t)
	dir := t.TempDir()

	derPath := filepath.Join(dir, "google.der")
	require.NoError(t, os.WriteFile(derPath, der, 0o644))
	pemPath := filepath.Join(dir, "google.PEM")
	require.NoError(t, os.WriteFile(pemPath, readGooglePEM(t), 0o644))

	p := x509viewer.New()
	fromDER, err := p.ParseFile(derPath)
	require.NoError(t, err)
	fromPEM, err := p.ParseFile(pemPath)
	require.NoError(t, err)
	assert.Equal(t, fromDER.Fingerprints, fromPEM.Fingerprints)

	_, err = x509viewer.New(x509viewer.WithMaxInputSize(64)).ParseFile(derPath)
	var verr *x509viewer.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, x509viewer.KindInputTooLarge, verr.Kind)
}

func TestParse_Errors(t *testing.T) {
	pemInput := readGooglePEM(t)

	tests := []struct {
		name     string
		parser   *x509viewer.Parser
		input    []byte
		der      bool
		kind     x509viewer.Kind
		phase    x509viewer.Phase
		sentinel error
	}{
		{
			name:     "Unrecognized text",
			parser:   x509viewer.New(),
			input:    []byte("this is not a certificate!"),
			kind:     x509viewer.KindUnrecognizedFormat,
			phase:    x509viewer.PhaseNormalize,
			sentinel: x509certs.ErrUnrecognizedFormat,
		},
		{
			name:     "Unterminated PEM",
			parser:   x509viewer.New(),
			input:    []byte("-----BEGIN CERTIFICATE-----\nMIIB"),
			kind:     x509viewer.KindMalformedEncoding,
			phase:    x509viewer.PhaseNormalize,
			sentinel: x509certs.ErrInvalidBase64,
		},
		{
			name:     "Length beyond buffer",
			parser:   x509viewer.New(),
			input:    []byte{0x30, 0x05, 0x02, 0x01},
			der:      true,
			kind:     x509viewer.KindTruncatedData,
			phase:    x509viewer.PhaseASN1,
			sentinel: ber.ErrTruncatedData,
		},
		{
			name:     "Truncated hex text",
			parser:   x509viewer.New(),
			input:    []byte("30 10 02 01 01"),
			kind:     x509viewer.KindTruncatedData,
			phase:    x509viewer.PhaseASN1,
			sentinel: ber.ErrTruncatedData,
		},
		{
			name:     "Hex of an odd byte count",
			parser:   x509viewer.New(),
			input:    []byte("300105"),
			kind:     x509viewer.KindTruncatedData,
			phase:    x509viewer.PhaseASN1,
			sentinel: ber.ErrTruncatedData,
		},
		{
			name:     "Base64 without padding",
			parser:   x509viewer.New(),
			input:    []byte("MAMCAQ"),
			kind:     x509viewer.KindTruncatedData,
			phase:    x509viewer.PhaseASN1,
			sentinel: ber.ErrTruncatedData,
		},
		{
			name:     "Indefinite length",
			parser:   x509viewer.New(),
			input:    []byte{0x30, 0x80, 0x00, 0x00},
			der:      true,
			kind:     x509viewer.KindMalformedEncoding,
			phase:    x509viewer.PhaseASN1,
			sentinel: ber.ErrMalformedEncoding,
		},
		{
			name:     "Depth limit",
			parser:   x509viewer.New(x509viewer.WithMaxDepth(2)),
			input:    pemInput,
			kind:     x509viewer.KindDepthExceeded,
			phase:    x509viewer.PhaseASN1,
			sentinel: ber.ErrDepthExceeded,
		},
		{
			name:     "Input too large",
			parser:   x509viewer.New(x509viewer.WithMaxInputSize(128)),
			input:    pemInput,
			kind:     x509viewer.KindInputTooLarge,
			phase:    x509viewer.PhaseNormalize,
			sentinel: x509certs.ErrInputTooLarge,
		},
		{
			name:     "Root is not a sequence",
			parser:   x509viewer.New(),
			input:    []byte{0x02, 0x01, 0x01},
			der:      true,
			kind:     x509viewer.KindCertificateParse,
			phase:    x509viewer.PhaseCertificate,
			sentinel: x509viewer.ErrCertificateParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				rec *x509viewer.Record
				err error
			)
			if tt.der {
				rec, err = tt.parser.ParseDER(tt.input)
			} else {
				rec, err = tt.parser.Parse(tt.input)
			}
			require.Error(t, err)
			assert.Nil(t, rec)

			var verr *x509viewer.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Kind)
			assert.Equal(t, tt.phase, verr.Phase)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, strings.HasPrefix(err.Error(), fmt.Sprintf("%s in %s: ", tt.kind, tt.phase)))
		})
	}
}

func TestError_IsKindSentinel(t *testing.T) {
	err := &x509viewer.Error{Kind: x509viewer.KindTruncatedData, Phase: x509viewer.PhaseASN1, Err: ber.ErrTruncatedData}

	assert.ErrorIs(t, err, x509viewer.ErrTruncatedData)
	assert.ErrorIs(t, err, ber.ErrTruncatedData)
	assert.False(t, errors.Is(err, x509viewer.ErrMalformedEncoding))
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind x509viewer.Kind
		want string
	}{
		{x509viewer.KindUnrecognizedFormat, "UnrecognizedFormat"},
		{x509viewer.KindTruncatedData, "TruncatedData"},
		{x509viewer.KindMalformedEncoding, "MalformedEncoding"},
		{x509viewer.KindDepthExceeded, "DepthExceeded"},
		{x509viewer.KindCertificateParse, "CertificateParseError"},
		{x509viewer.KindExtensionDecode, "ExtensionDecodeError"},
		{x509viewer.KindInputTooLarge, "InputTooLarge"},
		{x509viewer.Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestNew_Options(t *testing.T) {
	assert.Equal(t, x509viewer.Options{MaxDepth: 64, MaxInputSize: 1 << 20}, x509viewer.New().Options())
	assert.Equal(t,
		x509viewer.Options{MaxDepth: 8, MaxInputSize: 4096},
		x509viewer.New(x509viewer.WithMaxDepth(8), x509viewer.WithMaxInputSize(4096)).Options(),
	)
	assert.Equal(t,
		x509viewer.Options{MaxDepth: 64, MaxInputSize: 1 << 20},
		x509viewer.New(x509viewer.WithMaxDepth(0), x509viewer.WithMaxInputSize(-1)).Options(),
	)
}

func TestDecodeASN1(t *testing.T) {
	p := x509viewer.New()

	root, err := p.DecodeASN1([]byte("30 05 02 01 05 05 00"))
	require.NoError(t, err)
	assert.True(t, root.IsUniversal(ber.TagSequence))
	assert.Len(t, root.Children, 2)

	_, err = p.DecodeASN1([]byte("zz"))
	assert.ErrorIs(t, err, x509viewer.ErrUnrecognizedFormat)

	// Not a certificate, still a valid TLV tree.
	root, err = p.DecodeASN1([]byte(hex.EncodeToString(element(cbasn1.SET, utf8("x")))))
	require.NoError(t, err)
	assert.True(t, root.IsUniversal(ber.TagSet))
}
