// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/oids"
)

// parseLibrary extracts a record through crypto/x509.
// The signature algorithm is read from the decoded tree so that OIDs
// crypto/x509 does not name are still labelled through the registry.
func (p *Parser) parseLibrary(der []byte, tbs *ber.Node) (*Record, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, errors.Wrap(err, "crypto/x509")
	}

	sigIndex := 1
	if tbs.Child(0).IsContext(0) {
		sigIndex = 2
	}
	sigOID, err := algorithmOID(tbs.Child(sigIndex))
	if err != nil {
		return nil, err
	}

	serial := "00"
	if b := cert.SerialNumber.Bytes(); len(b) > 0 {
		serial = plainHex(b)
	}

	rec := &Record{
		Version:            fmt.Sprintf("V%d", cert.Version),
		SerialNumber:       serial,
		SignatureAlgorithm: oids.SignatureAlgorithm(sigOID),
		Issuer:             libraryName(cert.Issuer),
		Subject:            libraryName(cert.Subject),
		ValidFrom:          cert.NotBefore.UTC(),
		ValidTo:            cert.NotAfter.UTC(),
		PublicKeyInfo:      libraryPublicKey(cert, tbs),
		Strategy:           StrategyLibrary,
	}

	raws := make([]rawExtension, 0, len(cert.Extensions))
	for _, ext := range cert.Extensions {
		raws = append(raws, rawExtension{OID: ext.Id.String(), Critical: ext.Critical, Value: ext.Value})
	}
	rec.Extensions = p.decodeExtensions(raws)

	return rec, nil
}

// libraryName converts a parsed name, keeping every attribute in encoded order.
func libraryName(name pkix.Name) *DistinguishedName {
	dn := NewDistinguishedName()
	for _, atv := range name.Names {
		dn.Set(oids.Attribute(atv.Type.String()), fmt.Sprint(atv.Value))
	}
	return dn
}

// libraryPublicKey describes the parsed key. EC points are taken from the
// subjectPublicKey BIT STRING of tbs.
func libraryPublicKey(cert *x509.Certificate, tbs *ber.Node) PublicKeyInfo {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return PublicKeyInfo{
			Algorithm: "RSA",
			Size:      fmt.Sprintf("%d bits", key.N.BitLen()),
			Exponent:  key.E,
			Modulus:   plainHex(key.N.Bytes()),
		}
	case *ecdsa.PublicKey:
		info := PublicKeyInfo{
			Algorithm: "EC",
			Size:      fmt.Sprintf("%d bits", key.Params().BitSize),
			Curve:     key.Params().Name,
		}
		if c, ok := oids.CurveByName(key.Params().Name); ok {
			info.Curve = c.Label()
		}
		if point := subjectPublicKey(tbs); len(point) > 0 {
			info.PublicKeyHex = plainHex(point)
		}
		return info
	case ed25519.PublicKey:
		return PublicKeyInfo{Algorithm: "Ed25519", Size: "256 bits", PublicKeyHex: plainHex(key)}
	case *ecdh.PublicKey:
		return PublicKeyInfo{Algorithm: "X25519", Size: "256 bits", PublicKeyHex: plainHex(key.Bytes())}
	default:
		return PublicKeyInfo{Algorithm: cert.PublicKeyAlgorithm.String(), Size: "unknown"}
	}
}

// subjectPublicKey returns the BIT STRING payload of the subjectPublicKeyInfo
// in tbs, or nil when it does not decode.
func subjectPublicKey(tbs *ber.Node) []byte {
	key := tbs.Child(spkiIndex(tbs)).Child(1)
	if key == nil {
		return nil
	}
	v, err := key.Value()
	if err != nil {
		return nil
	}
	bs, ok := v.(ber.BitString)
	if !ok {
		return nil
	}
	return bs.Bytes
}
