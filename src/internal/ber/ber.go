// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ber

import "fmt"

// DefaultMaxDepth is the nesting bound used when Decoder.MaxDepth is zero.
const DefaultMaxDepth = 64

// Class is the tag class encoded in bits 8-7 of the identifier octet.
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	default:
		return fmt.Sprintf("CLASS(%d)", uint8(c))
	}
}

// Universal tag numbers used by X.509.
const (
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagEnumerated      = 10
	TagUTF8String      = 12
	TagSequence        = 16
	TagSet             = 17
	TagNumericString   = 18
	TagPrintableString = 19
	TagT61String       = 20
	TagIA5String       = 22
	TagUTCTime         = 23
	TagGeneralizedTime = 24
	TagVisibleString   = 26
	TagUniversalString = 28
	TagBMPString       = 30
)

// Node is one decoded tag-length-value element.
//
// Content is the exact content span and Raw the full encoding including the
// identifier and length octets. Both alias the decoded input buffer. Children
// is empty for primitive nodes.
type Node struct {
	Class       Class
	Tag         int
	Constructed bool
	Content     []byte
	Raw         []byte
	Children    []*Node
}

// Is reports whether n carries the given class and tag number.
func (n *Node) Is(class Class, tag int) bool {
	return n != nil && n.Class == class && n.Tag == tag
}

// IsUniversal reports whether n is a universal-class node with the given tag.
func (n *Node) IsUniversal(tag int) bool { return n.Is(ClassUniversal, tag) }

// IsContext reports whether n is a context-specific node with the given tag.
func (n *Node) IsContext(tag int) bool { return n.Is(ClassContextSpecific, tag) }

// Child returns the i-th child, or nil if there is none.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Decoder decodes TLV trees with a configurable nesting bound.
//
// A zero Decoder is ready to use. Decoder holds no state between calls and is
// safe for concurrent use by multiple goroutines.
type Decoder struct {
	// MaxDepth bounds the nesting level; the root element is level 1.
	MaxDepth int
}

// Decode decodes data with the default nesting bound.
func Decode(data []byte) (*Node, error) {
	var d Decoder
	return d.Decode(data)
}

// Decode decodes data into a single root node spanning the whole input.
//
// Parameters:
//   - data: BER or DER bytes; the tree aliases this slice
//
// Returns:
//   - *Node: root of the decoded tree
//   - error: a *SyntaxError wrapping ErrTruncatedData, ErrMalformedEncoding or ErrDepthExceeded
//
// Bytes left over after the root element are reported as ErrMalformedEncoding.
func (d Decoder) Decode(data []byte) (*Node, error) {
	if len(data) == 0 {
		return nil, syntaxError(ErrTruncatedData, 0, 1, "empty input")
	}

	p := &parser{maxDepth: d.MaxDepth}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}

	node, n, err := p.element(data, 0, 1)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, syntaxError(ErrMalformedEncoding, n, 1, "%d trailing bytes after top-level element", len(data)-n)
	}

	return node, nil
}

type parser struct{ maxDepth int }

// element decodes the element at the start of b. base is the absolute offset
// of b in the original input and is only used for error reporting.
func (p *parser) element(b []byte, base, depth int) (*Node, int, error) {
	if depth > p.maxDepth {
		return nil, 0, syntaxError(ErrDepthExceeded, base, depth, "limit is %d", p.maxDepth)
	}

	node := &Node{}
	pos, err := p.identifier(b, base, depth, node)
	if err != nil {
		return nil, 0, err
	}

	length, lenSize, err := p.length(b[pos:], base+pos, depth)
	if err != nil {
		return nil, 0, err
	}
	pos += lenSize

	if length > len(b)-pos {
		return nil, 0, syntaxError(ErrTruncatedData, base, depth,
			"length %d exceeds %d remaining bytes", length, len(b)-pos)
	}
	end := pos + length
	node.Content = b[pos:end:end]
	node.Raw = b[:end:end]

	if node.Constructed {
		for off := 0; off < length; {
			child, n, err := p.element(node.Content[off:], base+pos+off, depth+1)
			if err != nil {
				return nil, 0, err
			}
			node.Children = append(node.Children, child)
			off += n
		}
	}

	return node, end, nil
}

// identifier reads the identifier octets into node and returns their count.
func (p *parser) identifier(b []byte, base, depth int, node *Node) (int, error) {
	if len(b) == 0 {
		return 0, syntaxError(ErrTruncatedData, base, depth, "missing identifier octet")
	}

	first := b[0]
	node.Class = Class(first >> 6)
	node.Constructed = first&0x20 != 0
	node.Tag = int(first & 0x1f)
	if node.Tag != 0x1f {
		return 1, nil
	}

	// High-tag-number form: base-128 digits, bit 8 set on all but the last.
	tag := 0
	for i := 1; ; i++ {
		if i >= len(b) {
			return 0, syntaxError(ErrTruncatedData, base, depth, "unterminated high tag number")
		}
		c := b[i]
		if i == 1 && c == 0x80 {
			return 0, syntaxError(ErrMalformedEncoding, base, depth, "high tag number has leading zero digit")
		}
		if tag > (1<<31-1)>>7 {
			return 0, syntaxError(ErrMalformedEncoding, base, depth, "tag number overflows")
		}
		tag = tag<<7 | int(c&0x7f)
		if c&0x80 == 0 {
			node.Tag = tag
			return i + 1, nil
		}
	}
}

// length reads a definite length and returns it with the number of length octets.
func (p *parser) length(b []byte, base, depth int) (int, int, error) {
	if len(b) == 0 {
		return 0, 0, syntaxError(ErrTruncatedData, base, depth, "missing length octet")
	}

	first := b[0]
	switch {
	case first < 0x80:
		return int(first), 1, nil
	case first == 0x80:
		return 0, 0, syntaxError(ErrMalformedEncoding, base, depth, "indefinite length is not allowed")
	case first == 0xff:
		return 0, 0, syntaxError(ErrMalformedEncoding, base, depth, "reserved length octet 0xff")
	}

	count := int(first & 0x7f)
	if count > len(b)-1 {
		return 0, 0, syntaxError(ErrTruncatedData, base, depth, "need %d length octets, have %d", count, len(b)-1)
	}
	if count > 8 {
		return 0, 0, syntaxError(ErrMalformedEncoding, base, depth, "length uses %d octets", count)
	}

	var length uint64
	for _, c := range b[1 : 1+count] {
		length = length<<8 | uint64(c)
	}
	if remaining := uint64(len(b) - 1 - count); length > remaining {
		return 0, 0, syntaxError(ErrTruncatedData, base, depth,
			"length %d exceeds %d remaining bytes", length, remaining)
	}

	return int(length), 1 + count, nil
}
