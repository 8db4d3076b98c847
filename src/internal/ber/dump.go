// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ber

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// dumpHexLimit caps the number of content octets printed per primitive node.
const dumpHexLimit = 32

var universalNames = map[int]string{
	TagBoolean:         "BOOLEAN",
	TagInteger:         "INTEGER",
	TagBitString:       "BIT STRING",
	TagOctetString:     "OCTET STRING",
	TagNull:            "NULL",
	TagOID:             "OBJECT IDENTIFIER",
	TagEnumerated:      "ENUMERATED",
	TagUTF8String:      "UTF8String",
	TagSequence:        "SEQUENCE",
	TagSet:             "SET",
	TagNumericString:   "NumericString",
	TagPrintableString: "PrintableString",
	TagT61String:       "T61String",
	TagIA5String:       "IA5String",
	TagUTCTime:         "UTCTime",
	TagGeneralizedTime: "GeneralizedTime",
	TagVisibleString:   "VisibleString",
	TagUniversalString: "UniversalString",
	TagBMPString:       "BMPString",
}

// TagName returns a readable name for a class and tag number,
// such as "SEQUENCE", "[3]" or "[APPLICATION 1]".
func TagName(class Class, tag int) string {
	switch class {
	case ClassUniversal:
		if name, ok := universalNames[tag]; ok {
			return name
		}
		return fmt.Sprintf("[UNIVERSAL %d]", tag)
	case ClassContextSpecific:
		return fmt.Sprintf("[%d]", tag)
	default:
		return fmt.Sprintf("[%s %d]", class, tag)
	}
}

// Dump renders the tree rooted at n as indented text, one node per line.
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(TagName(n.Class, n.Tag))

	if n.Constructed {
		fmt.Fprintf(sb, " (%d elem)\n", len(n.Children))
		for _, c := range n.Children {
			dump(sb, c, indent+1)
		}
		return
	}

	if s := primitiveText(n); s != "" {
		sb.WriteByte(' ')
		sb.WriteString(s)
	}
	sb.WriteByte('\n')
}

// primitiveText renders the value of a primitive node for Dump.
func primitiveText(n *Node) string {
	v, err := n.Value()
	if err != nil {
		return "<" + err.Error() + ">"
	}

	switch t := v.(type) {
	case Boolean:
		if t.V {
			return "TRUE"
		}
		return "FALSE"
	case Integer:
		if i, err := t.Int64(); err == nil {
			return fmt.Sprintf("%d", i)
		}
		return "0x" + t.Hex()
	case OID:
		return t.ID.String()
	case PrintableString:
		return t.S
	case UTF8String:
		return t.S
	case String:
		return t.S
	case Time:
		return t.S
	case Null:
		return ""
	case BitString:
		return fmt.Sprintf("(%d bit) %s", len(t.Bytes)*8-t.UnusedBits, hexPreview(t.Bytes))
	case OctetString:
		return hexPreview(t.Bytes)
	case Sequence, Set:
		return ""
	case ContextSpecific:
		return hexPreview(t.Node.Content)
	case Other:
		return hexPreview(t.Node.Content)
	default:
		return hexPreview(n.Content)
	}
}

func hexPreview(b []byte) string {
	if len(b) <= dumpHexLimit {
		return strings.ToUpper(hex.EncodeToString(b))
	}
	return fmt.Sprintf("%s... (%d bytes)", strings.ToUpper(hex.EncodeToString(b[:dumpHexLimit])), len(b))
}
