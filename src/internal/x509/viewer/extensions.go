// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/oids"
)

// parseFailed replaces a nested structure that does not decode.
const parseFailed = "parse failed"

// genericItemLimit caps the children listed for an unknown extension.
const genericItemLimit = 10

// rawExtension is an extension before its payload is decoded.
type rawExtension struct {
	OID      string
	Critical bool
	Value    []byte
}

// extensionDecoder fills ext from the DER-decoded extnValue payload. An error
// drops the extension from the record.
type extensionDecoder func(n *ber.Node, ext *Extension) error

var extensionDecoders = map[string]extensionDecoder{
	oids.KeyUsage:               decodeKeyUsage,
	oids.BasicConstraints:       decodeBasicConstraints,
	oids.SubjectKeyIdentifier:   decodeSubjectKeyID,
	oids.AuthorityKeyIdentifier: decodeAuthorityKeyID,
	oids.SubjectAltName:         decodeAltName,
	oids.IssuerAltName:          decodeAltName,
	oids.ExtKeyUsage:            decodeExtKeyUsage,
	oids.CRLDistributionPoints:  decodeCRLDistributionPoints,
	oids.AuthorityInfoAccess:    decodeAuthorityInfoAccess,
	oids.CertificatePolicies:    decodeCertificatePolicies,
	oids.SCTList:                decodeSCTList,
}

// decodeExtensions decodes each extension in order, leaving out the ones that fail.
func (p *Parser) decodeExtensions(raws []rawExtension) []Extension {
	exts := make([]Extension, 0, len(raws))
	for _, raw := range raws {
		ext, err := p.decodeExtension(raw)
		if err != nil {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}

// decodeExtension decodes one extension payload.
//
// The payload of an unknown extension that is not DER is shown as hex; a
// known extension in that state fails with KindExtensionDecode.
func (p *Parser) decodeExtension(raw rawExtension) (Extension, error) {
	ext := Extension{
		Name:     oids.Extension(raw.OID),
		OID:      raw.OID,
		Critical: raw.Critical,
	}
	decode, known := extensionDecoders[raw.OID]

	node, err := p.decoder.Decode(raw.Value)
	if err != nil {
		if known {
			return Extension{}, extensionError(raw.OID, err)
		}
		ext.Value = "OID: " + raw.OID + "\nHex: " + SpacedHex(raw.Value)
		return ext, nil
	}

	if !known {
		ext.Value = formatGeneric(raw.OID, node)
		return ext, nil
	}
	if err := decode(node, &ext); err != nil {
		return Extension{}, extensionError(raw.OID, err)
	}
	return ext, nil
}

var keyUsageNames = [...]string{
	"digitalSignature",
	"nonRepudiation",
	"keyEncipherment",
	"dataEncipherment",
	"keyAgreement",
	"keyCertSign",
	"cRLSign",
	"encipherOnly",
	"decipherOnly",
}

func decodeKeyUsage(n *ber.Node, ext *Extension) error {
	v, err := n.Value()
	if err != nil {
		return err
	}
	bits, ok := v.(ber.BitString)
	if !ok {
		return errors.New("keyUsage is not a BIT STRING")
	}

	usages := make([]string, 0, len(keyUsageNames))
	for i, name := range keyUsageNames {
		if bits.At(i) {
			usages = append(usages, name)
		}
	}

	ext.KeyUsage = usages
	ext.Value = joinOr(usages, "unspecified")
	return nil
}

func decodeBasicConstraints(n *ber.Node, ext *Extension) error {
	if !n.IsUniversal(ber.TagSequence) {
		return errors.New("basicConstraints is not a SEQUENCE")
	}

	bc := &BasicConstraints{}
	for _, field := range n.Children {
		v, err := field.Value()
		if err != nil {
			continue
		}
		switch v := v.(type) {
		case ber.Boolean:
			bc.CA = v.V
		case ber.Integer:
			if l, err := v.Int64(); err == nil {
				pathLen := int(l)
				bc.PathLenConstraint = &pathLen
			}
		}
	}

	ext.BasicConstraints = bc
	ext.Value = fmt.Sprintf("CA: %t", bc.CA)
	if bc.PathLenConstraint != nil {
		ext.Value += fmt.Sprintf("\nPath Length Constraint: %d", *bc.PathLenConstraint)
	}
	return nil
}

func decodeSubjectKeyID(n *ber.Node, ext *Extension) error {
	v, err := n.Value()
	if err != nil {
		return err
	}
	id, ok := v.(ber.OctetString)
	if !ok {
		return errors.New("subjectKeyIdentifier is not an OCTET STRING")
	}
	ext.Value = SpacedHex(id.Bytes)
	return nil
}

func decodeAuthorityKeyID(n *ber.Node, ext *Extension) error {
	if !n.IsUniversal(ber.TagSequence) {
		return errors.New("authorityKeyIdentifier is not a SEQUENCE")
	}

	var parts []string
	for _, field := range n.Children {
		switch {
		case field.IsContext(0):
			parts = append(parts, "Key ID: "+SpacedHex(field.Content))
		case field.IsContext(1):
			parts = append(parts, "Issuer: [complex structure]")
		case field.IsContext(2):
			parts = append(parts, "Serial: "+SpacedHex(field.Content))
		}
	}

	ext.Value = joinOr(parts, "none")
	return nil
}

func decodeAltName(n *ber.Node, ext *Extension) error {
	if !n.IsUniversal(ber.TagSequence) {
		return errors.New("GeneralNames is not a SEQUENCE")
	}

	var names []string
	for _, gn := range n.Children {
		if s := formatGeneralName(gn, true); s != "" {
			names = append(names, s)
		}
	}

	ext.Value = joinOr(names, "none")
	return nil
}

func decodeExtKeyUsage(n *ber.Node, ext *Extension) error {
	if !n.IsUniversal(ber.TagSequence) {
		return errors.New("extKeyUsage is not a SEQUENCE")
	}

	var usages []string
	for _, purpose := range n.Children {
		oid, err := purpose.OID()
		if err != nil {
			usages = append(usages, parseFailed)
			continue
		}
		if label, ok := oids.LookupExtKeyUsage(oid.String()); ok {
			usages = append(usages, label)
		} else {
			usages = append(usages, "OID: "+oid.String())
		}
	}

	ext.Value = joinOr(usages, "unspecified")
	return nil
}

// decodeCRLDistributionPoints lists the fullName entries of each
// DistributionPoint. URIs are shown without a prefix.
func decodeCRLDistributionPoints(n *ber.Node, ext *Extension) error {
	if !n.IsUniversal(ber.TagSequence) {
		return errors.New("cRLDistributionPoints is not a SEQUENCE")
	}

	var points []string
	for _, dp := range n.Children {
		if !dp.IsUniversal(ber.TagSequence) {
			points = append(points, parseFailed)
			continue
		}
		for _, field := range dp.Children {
			if !field.IsContext(0) || !field.Constructed {
				continue
			}
			fullName := field.Child(0)
			if !fullName.IsContext(0) {
				continue
			}
			for _, gn := range fullName.Children {
				if s := formatGeneralName(gn, false); s != "" {
					points = append(points, s)
				}
			}
		}
	}

	ext.Value = joinOr(points, "no distribution points")
	return nil
}

func decodeAuthorityInfoAccess(n *ber.Node, ext *Extension) error {
	if !n.IsUniversal(ber.TagSequence) {
		return errors.New("authorityInfoAccess is not a SEQUENCE")
	}

	var descriptions []string
	for _, ad := range n.Children {
		method, err := ad.Child(0).OID()
		if !ad.IsUniversal(ber.TagSequence) || err != nil || ad.Child(1) == nil {
			descriptions = append(descriptions, parseFailed)
			continue
		}
		location := formatGeneralName(ad.Child(1), false)
		if location == "" {
			continue
		}
		descriptions = append(descriptions, oids.AccessMethod(method.String())+": "+location)
	}

	ext.Value = joinOr(descriptions, "no access information")
	return nil
}

func decodeCertificatePolicies(n *ber.Node, ext *Extension) error {
	if !n.IsUniversal(ber.TagSequence) {
		return errors.New("certificatePolicies is not a SEQUENCE")
	}

	var policies []string
	for _, pi := range n.Children {
		id, err := pi.Child(0).OID()
		if !pi.IsUniversal(ber.TagSequence) || err != nil {
			policies = append(policies, parseFailed)
			continue
		}

		policy := "Policy OID: " + id.String()
		if qualifiers := pi.Child(1); qualifiers.IsUniversal(ber.TagSequence) {
			for _, q := range qualifiers.Children {
				qid, err := q.Child(0).OID()
				if err != nil {
					continue
				}
				switch qid.String() {
				case oids.QualifierCPS:
					if uri, err := q.Child(1).Text(); err == nil {
						policy += "\n  CPS: " + uri
					}
				case oids.QualifierUserNotice:
					policy += "\n  User Notice"
				}
			}
		}
		policies = append(policies, policy)
	}

	ext.Value = joinOr(policies, "no policies")
	return nil
}

// formatGeneric renders an extension without a dedicated decoder: the
// first children of a SEQUENCE by primitive kind, or the single value.
func formatGeneric(oid string, n *ber.Node) string {
	head := "OID: " + oid + "\n"

	v, err := n.Value()
	if err != nil {
		return head + "Hex: " + SpacedHex(n.Content)
	}

	seq, ok := v.(ber.Sequence)
	if !ok {
		return head + genericValue(n, v)
	}
	if len(seq.Items) == 0 {
		return head + "SEQUENCE (0 items)"
	}

	lines := make([]string, 0, min(len(seq.Items), genericItemLimit)+1)
	for i, item := range seq.Items {
		if i == genericItemLimit {
			lines = append(lines, "...(more items)")
			break
		}
		lines = append(lines, fmt.Sprintf("[%d] %s", i, genericItem(item)))
	}
	return head + strings.Join(lines, "\n")
}

func genericItem(n *ber.Node) string {
	v, err := n.Value()
	if err != nil {
		return fmt.Sprintf("Type %d", n.Tag)
	}
	if s, ok := textOf(v); ok {
		return "String: " + s
	}
	switch v := v.(type) {
	case ber.Integer:
		return "Integer: " + SpacedHex(v.Bytes)
	case ber.OctetString:
		return "Octets: " + SpacedHex(v.Bytes)
	case ber.OID:
		return "OID: " + v.ID.String()
	default:
		return fmt.Sprintf("Type %d", n.Tag)
	}
}

func genericValue(n *ber.Node, v ber.Value) string {
	if s, ok := textOf(v); ok {
		return "String: " + s
	}
	switch v := v.(type) {
	case ber.OctetString:
		return "Hex: " + SpacedHex(v.Bytes)
	case ber.Integer:
		return "Integer: " + SpacedHex(v.Bytes)
	case ber.Boolean:
		return fmt.Sprintf("Boolean: %t", v.V)
	case ber.OID:
		return "OID: " + v.ID.String()
	default:
		return fmt.Sprintf("Type %d: %s", n.Tag, SpacedHex(n.Content))
	}
}

func textOf(v ber.Value) (string, bool) {
	switch v := v.(type) {
	case ber.PrintableString:
		return v.S, true
	case ber.UTF8String:
		return v.S, true
	case ber.String:
		return v.S, true
	default:
		return "", false
	}
}

func joinOr(lines []string, empty string) string {
	if len(lines) == 0 {
		return empty
	}
	return strings.Join(lines, "\n")
}
