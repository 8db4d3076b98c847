// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/oids"
)

// fallbackTime replaces validity timestamps of unexpected length.
var fallbackTime = time.Unix(0, 0).UTC()

// parseManual walks the TBSCertificate fields by position.
// A missing or mistagged field before the extensions fails the whole parse.
func (p *Parser) parseManual(tbs *ber.Node) (*Record, error) {
	rec := &Record{Strategy: StrategyManual}
	i := 0

	version := int64(0)
	if tbs.Child(0).IsContext(0) {
		v, err := manualVersion(tbs.Child(0))
		if err != nil {
			return nil, err
		}
		version = v
		i++
	}
	rec.Version = fmt.Sprintf("V%d", version+1)

	serial, err := integerField(tbs.Child(i))
	if err != nil {
		return nil, parseError(PhaseSerialNumber, "serialNumber: %v", err)
	}
	rec.SerialNumber = serial.Hex()
	i++

	sigOID, err := algorithmOID(tbs.Child(i))
	if err != nil {
		return nil, &Error{Kind: KindCertificateParse, Phase: PhaseSignature, Err: err}
	}
	rec.SignatureAlgorithm = oids.SignatureAlgorithm(sigOID)
	i++

	if rec.Issuer, err = parseName(tbs.Child(i)); err != nil {
		return nil, &Error{Kind: KindCertificateParse, Phase: PhaseIssuer, Err: err}
	}
	i++

	if rec.ValidFrom, rec.ValidTo, err = parseValidity(tbs.Child(i)); err != nil {
		return nil, &Error{Kind: KindCertificateParse, Phase: PhaseValidity, Err: err}
	}
	i++

	if rec.Subject, err = parseName(tbs.Child(i)); err != nil {
		return nil, &Error{Kind: KindCertificateParse, Phase: PhaseSubject, Err: err}
	}
	i++

	if rec.PublicKeyInfo, err = p.parsePublicKeyInfo(tbs.Child(i)); err != nil {
		return nil, &Error{Kind: KindCertificateParse, Phase: PhaseSubjectPublicKeyInfo, Err: err}
	}
	i++

	// issuerUniqueID [1] and subjectUniqueID [2] carry nothing to display.
	for _, field := range tbs.Children[i:] {
		if field.IsContext(3) {
			rec.Extensions = p.decodeExtensions(manualExtensions(field))
		}
	}
	if rec.Extensions == nil {
		rec.Extensions = []Extension{}
	}

	return rec, nil
}

func manualVersion(n *ber.Node) (int64, error) {
	if !n.Constructed {
		return 0, parseError(PhaseVersion, "version [0] is not constructed")
	}
	v, err := integerField(n.Child(0))
	if err != nil {
		return 0, parseError(PhaseVersion, "version: %v", err)
	}
	version, err := v.Int64()
	if err != nil {
		return 0, parseError(PhaseVersion, "version: %v", err)
	}
	return version, nil
}

func integerField(n *ber.Node) (ber.Integer, error) {
	if !n.IsUniversal(ber.TagInteger) {
		return ber.Integer{}, errors.New("expected INTEGER")
	}
	v, err := n.Value()
	if err != nil {
		return ber.Integer{}, err
	}
	return v.(ber.Integer), nil
}

// algorithmOID returns the OID of an AlgorithmIdentifier SEQUENCE.
func algorithmOID(n *ber.Node) (string, error) {
	if !n.IsUniversal(ber.TagSequence) {
		return "", errors.New("expected AlgorithmIdentifier SEQUENCE")
	}
	oid, err := n.Child(0).OID()
	if err != nil {
		return "", errors.Wrap(err, "algorithm")
	}
	return oid.String(), nil
}

// parseName decodes an RDNSequence. Attributes that are not a SEQUENCE of
// OID and value are skipped.
func parseName(n *ber.Node) (*DistinguishedName, error) {
	if !n.IsUniversal(ber.TagSequence) {
		return nil, errors.New("expected Name SEQUENCE")
	}

	dn := NewDistinguishedName()
	for _, rdn := range n.Children {
		if !rdn.IsUniversal(ber.TagSet) {
			continue
		}
		for _, atv := range rdn.Children {
			if !atv.IsUniversal(ber.TagSequence) || len(atv.Children) < 2 {
				continue
			}
			oid, err := atv.Child(0).OID()
			if err != nil {
				continue
			}
			dn.Set(oids.Attribute(oid.String()), attributeValue(atv.Child(1)))
		}
	}
	return dn, nil
}

func attributeValue(n *ber.Node) string {
	if s, err := n.Text(); err == nil {
		return s
	}
	return ber.DecodeText(n.Content)
}

func parseValidity(n *ber.Node) (time.Time, time.Time, error) {
	if !n.IsUniversal(ber.TagSequence) || len(n.Children) < 2 {
		return time.Time{}, time.Time{}, errors.New("expected Validity SEQUENCE of two times")
	}

	var times [2]time.Time
	for i := range times {
		v, err := n.Child(i).Value()
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		t, ok := v.(ber.Time)
		if !ok {
			return time.Time{}, time.Time{}, errors.Errorf("validity field %d is not a time", i)
		}
		times[i] = parseTime(t.S)
	}
	return times[0], times[1], nil
}

// parseTime interprets a time string by its length: 13 characters as UTCTime
// (YYMMDDHHMMSSZ, years below 50 in the 2000s) and 15 characters as
// GeneralizedTime (YYYYMMDDHHMMSSZ). Anything else yields fallbackTime.
func parseTime(s string) time.Time {
	var year, rest int
	switch len(s) {
	case 13:
		yy, ok := digits(s[0:2])
		if !ok {
			return fallbackTime
		}
		year = 1900 + yy
		if yy < 50 {
			year = 2000 + yy
		}
		rest = 2
	case 15:
		yyyy, ok := digits(s[0:4])
		if !ok {
			return fallbackTime
		}
		year = yyyy
		rest = 4
	default:
		return fallbackTime
	}

	var fields [5]int
	for i := range fields {
		v, ok := digits(s[rest+2*i : rest+2*i+2])
		if !ok {
			return fallbackTime
		}
		fields[i] = v
	}

	return time.Date(year, time.Month(fields[0]), fields[1], fields[2], fields[3], fields[4], 0, time.UTC)
}

func digits(s string) (int, bool) {
	v := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, true
}

func (p *Parser) parsePublicKeyInfo(n *ber.Node) (PublicKeyInfo, error) {
	if !n.IsUniversal(ber.TagSequence) {
		return PublicKeyInfo{}, errors.New("expected SubjectPublicKeyInfo SEQUENCE")
	}
	alg := n.Child(0)
	oid, err := algorithmOID(alg)
	if err != nil {
		return PublicKeyInfo{}, err
	}

	bits, err := n.Child(1).Value()
	if err != nil {
		return PublicKeyInfo{}, errors.Wrap(err, "subjectPublicKey")
	}
	bs, ok := bits.(ber.BitString)
	if !ok {
		return PublicKeyInfo{}, errors.New("subjectPublicKey is not a BIT STRING")
	}
	key := bs.Bytes

	switch oid {
	case oids.SM2:
		info := PublicKeyInfo{Algorithm: "SM2", Size: "256 bits", Curve: "SM2"}
		if len(key) >= 65 {
			info.PublicKeyHex = plainHex(key)
		}
		return info, nil
	case oids.ECPublicKey:
		info := PublicKeyInfo{Algorithm: "EC", Size: "unknown"}
		if curveOID, err := alg.Child(1).OID(); err == nil {
			info.Curve = curveOID.String()
			if c, ok := oids.LookupCurve(curveOID.String()); ok {
				info.Curve = c.Label()
				info.Size = fmt.Sprintf("%d bits", c.Bits)
			}
		}
		if len(key) > 0 {
			info.PublicKeyHex = plainHex(key)
		}
		return info, nil
	case oids.RSAEncryption:
		return p.rsaPublicKey(key), nil
	default:
		return PublicKeyInfo{Algorithm: oid, Size: "unknown"}, nil
	}
}

// rsaPublicKey decodes RSAPublicKey{modulus, publicExponent}. A key that does
// not decode still reports the algorithm.
func (p *Parser) rsaPublicKey(key []byte) PublicKeyInfo {
	info := PublicKeyInfo{Algorithm: "RSA", Size: "unknown"}

	seq, err := p.decoder.Decode(key)
	if err != nil || !seq.IsUniversal(ber.TagSequence) {
		return info
	}
	mod, err := integerField(seq.Child(0))
	if err != nil {
		return info
	}
	n, err := mod.Big()
	if err != nil {
		return info
	}
	info.Size = fmt.Sprintf("%d bits", n.BitLen())
	info.Modulus = plainHex(n.Bytes())

	if exp, err := integerField(seq.Child(1)); err == nil {
		if e, err := exp.Int64(); err == nil {
			info.Exponent = int(e)
		}
	}
	return info
}

// manualExtensions collects the Extension SEQUENCEs under [3]. Entries that
// are not SEQUENCE{OID, BOOLEAN?, OCTET STRING} are dropped. A [3] that does
// not hold a SEQUENCE yields no extensions.
func manualExtensions(n *ber.Node) []rawExtension {
	if !n.Constructed || !n.Child(0).IsUniversal(ber.TagSequence) {
		return nil
	}

	var raws []rawExtension
	for _, ext := range n.Child(0).Children {
		if !ext.IsUniversal(ber.TagSequence) {
			continue
		}
		oid, err := ext.Child(0).OID()
		if err != nil {
			continue
		}

		idx, critical := 1, false
		if c := ext.Child(1); c.IsUniversal(ber.TagBoolean) {
			if v, err := c.Value(); err == nil {
				critical = v.(ber.Boolean).V
			}
			idx = 2
		}

		value := ext.Child(idx)
		if !value.IsUniversal(ber.TagOctetString) || value.Constructed {
			continue
		}
		raws = append(raws, rawExtension{OID: oid.String(), Critical: critical, Value: value.Content})
	}
	return raws
}
