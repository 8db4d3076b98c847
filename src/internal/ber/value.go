// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ber

import (
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Value is the closed set of typed values a Node can hold.
// Consumers switch over the concrete types below; Other covers every
// application, private or unsupported universal element.
type Value interface{ isValue() }

type (
	// Boolean is a BOOLEAN. Any non-zero content octet is true.
	Boolean struct{ V bool }

	// Integer is an INTEGER kept as its two's complement content octets.
	Integer struct{ Bytes []byte }

	// BitString is a BIT STRING without its leading unused-bits octet.
	BitString struct {
		Bytes      []byte
		UnusedBits int
	}

	// OctetString is a primitive OCTET STRING.
	OctetString struct{ Bytes []byte }

	// Null is a NULL.
	Null struct{}

	// OID is an OBJECT IDENTIFIER.
	OID struct{ ID asn1.ObjectIdentifier }

	// Sequence is a SEQUENCE or SEQUENCE OF.
	Sequence struct{ Items []*Node }

	// Set is a SET or SET OF.
	Set struct{ Items []*Node }

	// PrintableString is a PrintableString.
	PrintableString struct{ S string }

	// UTF8String is a UTF8String.
	UTF8String struct{ S string }

	// String is any other character string (IA5String, BMPString, T61String, ...).
	String struct {
		Tag int
		S   string
	}

	// Time is a UTCTime or GeneralizedTime kept as its raw text.
	Time struct {
		Tag int
		S   string
	}

	// ContextSpecific is a context-specific element [n], implicit or explicit.
	ContextSpecific struct {
		Tag  int
		Node *Node
	}

	// Other is an element outside the types above.
	Other struct{ Node *Node }
)

func (Boolean) isValue()         {}
func (Integer) isValue()         {}
func (BitString) isValue()       {}
func (OctetString) isValue()     {}
func (Null) isValue()            {}
func (OID) isValue()             {}
func (Sequence) isValue()        {}
func (Set) isValue()             {}
func (PrintableString) isValue() {}
func (UTF8String) isValue()      {}
func (String) isValue()          {}
func (Time) isValue()            {}
func (ContextSpecific) isValue() {}
func (Other) isValue()           {}

// Value interprets the node as one of the Value types.
//
// Returns an error wrapping ErrMalformedEncoding when the content does not
// fit the universal type (for example a constructed INTEGER or an OID with a
// truncated arc).
func (n *Node) Value() (Value, error) {
	switch n.Class {
	case ClassContextSpecific:
		return ContextSpecific{Tag: n.Tag, Node: n}, nil
	case ClassApplication, ClassPrivate:
		return Other{Node: n}, nil
	}

	if n.Constructed {
		switch n.Tag {
		case TagSequence:
			return Sequence{Items: n.Children}, nil
		case TagSet:
			return Set{Items: n.Children}, nil
		case TagBoolean, TagInteger, TagBitString, TagOctetString, TagNull, TagOID:
			return nil, malformed("constructed form of universal tag %d", n.Tag)
		default:
			return Other{Node: n}, nil
		}
	}

	switch n.Tag {
	case TagBoolean:
		if len(n.Content) != 1 {
			return nil, malformed("BOOLEAN with %d content octets", len(n.Content))
		}
		return Boolean{V: n.Content[0] != 0}, nil
	case TagInteger, TagEnumerated:
		if len(n.Content) == 0 {
			return nil, malformed("empty INTEGER")
		}
		return Integer{Bytes: n.Content}, nil
	case TagBitString:
		if len(n.Content) == 0 || n.Content[0] > 7 {
			return nil, malformed("invalid BIT STRING padding")
		}
		return BitString{Bytes: n.Content[1:], UnusedBits: int(n.Content[0])}, nil
	case TagOctetString:
		return OctetString{Bytes: n.Content}, nil
	case TagNull:
		return Null{}, nil
	case TagOID:
		var id asn1.ObjectIdentifier
		s := reencode(cbasn1.OBJECT_IDENTIFIER, n.Content)
		if !s.ReadASN1ObjectIdentifier(&id) {
			return nil, malformed("invalid OBJECT IDENTIFIER")
		}
		return OID{ID: id}, nil
	case TagSequence, TagSet:
		return nil, malformed("primitive form of universal tag %d", n.Tag)
	case TagPrintableString:
		return PrintableString{S: DecodeText(n.Content)}, nil
	case TagUTF8String:
		return UTF8String{S: DecodeText(n.Content)}, nil
	case TagBMPString:
		return String{Tag: n.Tag, S: decodeBMP(n.Content)}, nil
	case TagUniversalString:
		return String{Tag: n.Tag, S: decodeUniversal(n.Content)}, nil
	case TagIA5String, TagT61String, TagVisibleString, TagNumericString:
		return String{Tag: n.Tag, S: DecodeText(n.Content)}, nil
	case TagUTCTime, TagGeneralizedTime:
		return Time{Tag: n.Tag, S: string(n.Content)}, nil
	default:
		return Other{Node: n}, nil
	}
}

// OID returns the node's OBJECT IDENTIFIER.
func (n *Node) OID() (asn1.ObjectIdentifier, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: missing OBJECT IDENTIFIER", ErrUnexpectedType)
	}
	v, err := n.Value()
	if err != nil {
		return nil, err
	}
	oid, ok := v.(OID)
	if !ok {
		return nil, unexpected(n, "OBJECT IDENTIFIER")
	}
	return oid.ID, nil
}

// Text returns the decoded text of any character string node.
func (n *Node) Text() (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: missing string", ErrUnexpectedType)
	}
	v, err := n.Value()
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case PrintableString:
		return s.S, nil
	case UTF8String:
		return s.S, nil
	case String:
		return s.S, nil
	default:
		return "", unexpected(n, "character string")
	}
}

// Int64 returns the value of a small INTEGER.
func (i Integer) Int64() (int64, error) {
	var v int64
	s := reencode(cbasn1.INTEGER, i.Bytes)
	if !s.ReadASN1Integer(&v) {
		return 0, malformed("INTEGER does not fit 64 bits or is not minimally encoded")
	}
	return v, nil
}

// Big returns the value of the INTEGER.
func (i Integer) Big() (*big.Int, error) {
	v := new(big.Int)
	s := reencode(cbasn1.INTEGER, i.Bytes)
	if !s.ReadASN1Integer(v) {
		return nil, malformed("invalid INTEGER")
	}
	return v, nil
}

// Hex returns the content octets as uppercase hex with a single leading
// 0x00 sign-padding octet removed.
func (i Integer) Hex() string {
	b := i.Bytes
	if len(b) > 1 && b[0] == 0x00 {
		b = b[1:]
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

// At returns bit i counted from the most significant bit of the first octet.
// Bits past the end are zero.
func (b BitString) At(i int) bool {
	if i < 0 || i/8 >= len(b.Bytes) {
		return false
	}
	return b.Bytes[i/8]>>(7-uint(i%8))&1 == 1
}

// reencode wraps content in a minimal DER header so cryptobyte's strict
// readers accept content taken from a BER node.
func reencode(tag cbasn1.Tag, content []byte) cryptobyte.String {
	var b cryptobyte.Builder
	b.AddASN1(tag, func(c *cryptobyte.Builder) { c.AddBytes(content) })
	return cryptobyte.String(b.BytesOrPanic())
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedEncoding, fmt.Sprintf(format, args...))
}

func unexpected(n *Node, want string) error {
	return fmt.Errorf("%w: want %s, got %s", ErrUnexpectedType, want, TagName(n.Class, n.Tag))
}
