// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer_test

import (
	"crypto/sha256"
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
)

func TestParseDER_SM2(t *testing.T) {
	der := sm2Fields().encode()

	rec, err := x509viewer.New().ParseDER(der)
	require.NoError(t, err)

	assert.Equal(t, x509viewer.StrategyManual, rec.Strategy)
	assert.Equal(t, "V3", rec.Version)
	assert.Equal(t, "8B2701", rec.SerialNumber)
	assert.Equal(t, "SM3withSM2", rec.SignatureAlgorithm)
	assert.Equal(t, "CN=SM2 Root, O=Example", x509viewer.FormatDN(rec.Issuer))
	assert.Equal(t, "CN=sm2.example.cn", x509viewer.FormatDN(rec.Subject))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), rec.ValidFrom)
	assert.Equal(t, time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC), rec.ValidTo)

	pk := rec.PublicKeyInfo
	assert.Equal(t, "SM2", pk.Algorithm)
	assert.Equal(t, "SM2", pk.Curve)
	assert.Equal(t, "256 bits", pk.Size)
	key, err := hex.DecodeString(pk.PublicKeyHex)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(key), 65)
	assert.Equal(t, byte(0x04), key[0])

	require.Len(t, rec.Extensions, 3)
	assert.Equal(t, x509viewer.Extension{
		Name:     "keyUsage",
		OID:      "2.5.29.15",
		Critical: true,
		Value:    "digitalSignature\nkeyCertSign",
		KeyUsage: []string{"digitalSignature", "keyCertSign"},
	}, rec.Extensions[0])
	assert.Equal(t, "CA: false", rec.Extensions[1].Value)
	assert.False(t, rec.Extensions[1].Critical)
	assert.Equal(t, "1.3.6.1.4.1.99999.1", rec.Extensions[2].Name)
	assert.Equal(t, "OID: 1.3.6.1.4.1.99999.1\nString: hello", rec.Extensions[2].Value)

	sum := sha256.Sum256(der)
	assert.Equal(t, fmt.Sprintf("% X", sum[:]), rec.Fingerprints.SHA256)
}

func TestParseDER_ManualFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *certFields)
		check  func(t *testing.T, rec *x509viewer.Record)
	}{
		{
			name:   "Absent version is V1",
			modify: func(f *certFields) { f.version = nil; f.trailing = nil },
			check: func(t *testing.T, rec *x509viewer.Record) {
				assert.Equal(t, "V1", rec.Version)
				assert.Empty(t, rec.Extensions)
				assert.NotNil(t, rec.Extensions)
			},
		},
		{
			name:   "Version 1 is V2",
			modify: func(f *certFields) { f.version = version(1) },
			check: func(t *testing.T, rec *x509viewer.Record) {
				assert.Equal(t, "V2", rec.Version)
			},
		},
		{
			name:   "Serial without sign padding",
			modify: func(f *certFields) { f.serial = integer(0x7f01) },
			check: func(t *testing.T, rec *x509viewer.Record) {
				assert.Equal(t, "7F01", rec.SerialNumber)
			},
		},
		{
			name:   "Unknown signature algorithm",
			modify: func(f *certFields) { f.signature = algorithm(asn1.ObjectIdentifier{1, 2, 3, 4}) },
			check: func(t *testing.T, rec *x509viewer.Record) {
				assert.Equal(t, "1.2.3.4", rec.SignatureAlgorithm)
			},
		},
		{
			name: "Unknown and malformed attributes",
			modify: func(f *certFields) {
				f.subject = sequence(
					element(cbasn1.SET, sequence(oid(asn1.ObjectIdentifier{2, 5, 4, 99}), utf8("custom"))),
					element(cbasn1.SET, integer(1)),
					integer(2),
					element(cbasn1.SET, sequence(oid(oidCommonName), element(cbasn1.PrintableString, []byte("printable")))),
				)
			},
			check: func(t *testing.T, rec *x509viewer.Record) {
				assert.Equal(t, []string{"2.5.4.99", "CN"}, rec.Subject.Keys())
				assert.Equal(t, "CN=printable, 2.5.4.99=custom", x509viewer.FormatDN(rec.Subject))
			},
		},
		{
			name:   "UTF-8 attribute value",
			modify: func(f *certFields) { f.subject = name(attr{oidCommonName, "证书测试"}) },
			check: func(t *testing.T, rec *x509viewer.Record) {
				cn, _ := rec.Subject.Get("CN")
				assert.Equal(t, "证书测试", cn)
			},
		},
		{
			name: "Unique identifiers before extensions",
			modify: func(f *certFields) {
				f.trailing = append([][]byte{
					element(tagIssuerUID, []byte{0x00, 0x01}),
					element(tagSubjUID, []byte{0x00, 0x02}),
				}, f.trailing...)
			},
			check: func(t *testing.T, rec *x509viewer.Record) {
				assert.Len(t, rec.Extensions, 3)
			},
		},
		{
			name:   "Extensions field without a sequence",
			modify: func(f *certFields) { f.trailing = [][]byte{element(tagExts, integer(1))} },
			check: func(t *testing.T, rec *x509viewer.Record) {
				assert.Empty(t, rec.Extensions)
			},
		},
		{
			name: "Malformed extension entries are dropped",
			modify: func(f *certFields) {
				f.trailing = [][]byte{extensions(
					integer(1),
					sequence(integer(1)),
					sequence(oid(oidKeyUsage)),
					sequence(oid(oidKeyUsage), element(cbasn1.BOOLEAN, []byte{0xff}), integer(3)),
					extension(oidBasicCons, true, sequence(element(cbasn1.BOOLEAN, []byte{0xff}))),
				)}
			},
			check: func(t *testing.T, rec *x509viewer.Record) {
				require.Len(t, rec.Extensions, 1)
				assert.Equal(t, "basicConstraints", rec.Extensions[0].Name)
				assert.True(t, rec.Extensions[0].Critical)
				assert.Equal(t, "CA: true", rec.Extensions[0].Value)
			},
		},
		{
			name: "Known extension with non-DER payload is dropped",
			modify: func(f *certFields) {
				f.trailing = [][]byte{extensions(
					extension(oidKeyUsage, false, []byte{0xff, 0xff}),
					extension(oidPrivateExt, false, []byte{0xff, 0xff}),
				)}
			},
			check: func(t *testing.T, rec *x509viewer.Record) {
				require.Len(t, rec.Extensions, 1)
				assert.Equal(t, "OID: 1.3.6.1.4.1.99999.1\nHex: FF FF", rec.Extensions[0].Value)
			},
		},
		{
			name: "Known extension with wrong shape is dropped",
			modify: func(f *certFields) {
				f.trailing = [][]byte{extensions(
					extension(oidKeyUsage, true, integer(5)),
					extension(oidBasicCons, false, sequence()),
				)}
			},
			check: func(t *testing.T, rec *x509viewer.Record) {
				require.Len(t, rec.Extensions, 1)
				assert.Equal(t, "basicConstraints", rec.Extensions[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sm2Fields()
			tt.modify(&f)

			rec, err := x509viewer.New().ParseDER(f.encode())
			require.NoError(t, err)
			assert.Equal(t, x509viewer.StrategyManual, rec.Strategy)
			tt.check(t, rec)
		})
	}
}

func TestParseDER_ManualFatal(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *certFields)
		phase  x509viewer.Phase
	}{
		{"Version is not an integer", func(f *certFields) { f.version = element(tagVersion, utf8("3")) }, x509viewer.PhaseVersion},
		{"Version is primitive", func(f *certFields) { f.version = element(cbasn1.Tag(0).ContextSpecific(), []byte{0x02}) }, x509viewer.PhaseVersion},
		{"Serial has wrong tag", func(f *certFields) { f.serial = utf8("01") }, x509viewer.PhaseSerialNumber},
		{"Serial is empty", func(f *certFields) { f.serial = element(cbasn1.INTEGER, nil) }, x509viewer.PhaseSerialNumber},
		{"Signature is not a sequence", func(f *certFields) { f.signature = oid(oidSM3WithSM2) }, x509viewer.PhaseSignature},
		{"Signature without OID", func(f *certFields) { f.signature = sequence(integer(1)) }, x509viewer.PhaseSignature},
		{"Issuer is not a sequence", func(f *certFields) { f.issuer = element(cbasn1.SET, nil) }, x509viewer.PhaseIssuer},
		{"Validity has one time", func(f *certFields) { f.validity = sequence(utcTime("250101000000Z")) }, x509viewer.PhaseValidity},
		{"Validity with wrong tag", func(f *certFields) { f.validity = sequence(utcTime("250101000000Z"), integer(1)) }, x509viewer.PhaseValidity},
		{"Missing subject", func(f *certFields) { f.subject, f.spki, f.trailing = nil, nil, nil }, x509viewer.PhaseSubject},
		{"Missing public key", func(f *certFields) { f.spki, f.trailing = nil, nil }, x509viewer.PhaseSubjectPublicKeyInfo},
		{"Public key is not a bit string", func(f *certFields) {
			f.spki = sequence(algorithm(oidSM2), element(cbasn1.OCTET_STRING, sm2Point()))
		}, x509viewer.PhaseSubjectPublicKeyInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sm2Fields()
			tt.modify(&f)

			rec, err := x509viewer.New().ParseDER(f.encode())
			require.Error(t, err)
			assert.Nil(t, rec)

			var verr *x509viewer.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, x509viewer.KindCertificateParse, verr.Kind)
			assert.Equal(t, tt.phase, verr.Phase)
			assert.ErrorIs(t, err, x509viewer.ErrCertificateParse)
		})
	}
}

func TestParseDER_Validity(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()

	tests := []struct {
		name      string
		notBefore []byte
		notAfter  []byte
		wantFrom  time.Time
		wantTo    time.Time
	}{
		{
			name:      "UTCTime pivot",
			notBefore: utcTime("491231235959Z"),
			notAfter:  utcTime("500101000000Z"),
			wantFrom:  time.Date(2049, 12, 31, 23, 59, 59, 0, time.UTC),
			wantTo:    time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "GeneralizedTime",
			notBefore: generalizedTime("20500101120000Z"),
			notAfter:  generalizedTime("99991231235959Z"),
			wantFrom:  time.Date(2050, 1, 1, 12, 0, 0, 0, time.UTC),
			wantTo:    time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "Short UTCTime falls back",
			notBefore: utcTime("2501010000Z"),
			notAfter:  utcTime("250101000000Z"),
			wantFrom:  epoch,
			wantTo:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Non-digit time falls back",
			notBefore: utcTime("25AB01000000Z"),
			notAfter:  generalizedTime("2025010100000+"),
			wantFrom:  epoch,
			wantTo:    epoch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sm2Fields()
			f.validity = sequence(tt.notBefore, tt.notAfter)

			rec, err := x509viewer.New().ParseDER(f.encode())
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, rec.ValidFrom)
			assert.Equal(t, tt.wantTo, rec.ValidTo)
		})
	}
}

func TestParseDER_ManualPublicKeys(t *testing.T) {
	ecPoint := append([]byte{0x04}, make([]byte, 96)...)
	modulus := append([]byte{0x00, 0xc0}, make([]byte, 127)...)
	rsaPub := sequence(element(cbasn1.INTEGER, modulus), integer(65537))

	tests := []struct {
		name string
		spki []byte
		want x509viewer.PublicKeyInfo
	}{
		{
			name: "EC point off the curve",
			spki: spki(algorithm(oidECPublicKey, oid(oidP384)), ecPoint),
			want: x509viewer.PublicKeyInfo{
				Algorithm:    "EC",
				Size:         "384 bits",
				Curve:        "P-384 (secp384r1)",
				PublicKeyHex: strings.ToUpper(hex.EncodeToString(ecPoint)),
			},
		},
		{
			name: "EC with unknown curve",
			spki: spki(algorithm(oidECPublicKey, oid(asn1.ObjectIdentifier{1, 2, 3, 4})), []byte{0x04, 0x01}),
			want: x509viewer.PublicKeyInfo{Algorithm: "EC", Size: "unknown", Curve: "1.2.3.4", PublicKeyHex: "0401"},
		},
		{
			name: "SM2 with short key",
			spki: spki(algorithm(oidSM2), []byte{0x04, 0x01, 0x02}),
			want: x509viewer.PublicKeyInfo{Algorithm: "SM2", Size: "256 bits", Curve: "SM2"},
		},
		{
			// crypto/x509 requires NULL parameters on RSA keys, the walker does not.
			name: "RSA without NULL parameters",
			spki: spki(algorithm(oidRSA), rsaPub),
			want: x509viewer.PublicKeyInfo{
				Algorithm: "RSA",
				Size:      "1024 bits",
				Exponent:  65537,
				Modulus:   strings.ToUpper(hex.EncodeToString(modulus[1:])),
			},
		},
		{
			name: "RSA key that is not DER",
			spki: spki(algorithm(oidRSA), []byte{0x01}),
			want: x509viewer.PublicKeyInfo{Algorithm: "RSA", Size: "unknown"},
		},
		{
			name: "DSA",
			spki: spki(algorithm(oidDSA), []byte{0x02, 0x01, 0x01}),
			want: x509viewer.PublicKeyInfo{Algorithm: oidDSA.String(), Size: "unknown"},
		},
		{
			name: "Unknown algorithm",
			spki: spki(algorithm(asn1.ObjectIdentifier{1, 2, 3, 4, 5}), []byte{0x01}),
			want: x509viewer.PublicKeyInfo{Algorithm: "1.2.3.4.5", Size: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sm2Fields()
			f.spki = tt.spki

			rec, err := x509viewer.New().ParseDER(f.encode())
			require.NoError(t, err)
			assert.Equal(t, x509viewer.StrategyManual, rec.Strategy)
			assert.Equal(t, tt.want, rec.PublicKeyInfo)
		})
	}
}
