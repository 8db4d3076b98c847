// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"fmt"
	"net/netip"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
)

// GeneralName choice tags.
const (
	gnOtherName     = 0
	gnRFC822Name    = 1
	gnDNSName       = 2
	gnDirectoryName = 4
	gnURI           = 6
	gnIPAddress     = 7
)

// formatGeneralName renders one GeneralName.
//
// With altName set (subjectAltName, issuerAltName) URIs carry a "URI: " prefix
// and unhandled choices show their content. Elsewhere a URI is shown bare. An
// iPAddress that is neither 4 nor 16 bytes renders as "".
func formatGeneralName(gn *ber.Node, altName bool) string {
	if gn.Class != ber.ClassContextSpecific {
		return fmt.Sprintf("Type %d", gn.Tag)
	}

	switch gn.Tag {
	case gnRFC822Name:
		return "Email: " + ber.DecodeText(gn.Content)
	case gnDNSName:
		return "DNS: " + ber.DecodeText(gn.Content)
	case gnURI:
		if altName {
			return "URI: " + ber.DecodeText(gn.Content)
		}
		return ber.DecodeText(gn.Content)
	case gnIPAddress:
		return formatIP(gn.Content)
	case gnDirectoryName:
		dn, err := parseName(gn.Child(0))
		if err != nil {
			return "DN: " + parseFailed
		}
		return "DN: " + FormatDN(dn)
	default:
		if altName && !gn.Constructed {
			return fmt.Sprintf("Type %d: %s", gn.Tag, ber.DecodeText(gn.Content))
		}
		return fmt.Sprintf("Type %d", gn.Tag)
	}
}

// formatIP renders an IPv4 address in dotted-decimal form. IPv6 addresses are
// shown as the "[IPv6]" placeholder.
func formatIP(b []byte) string {
	switch len(b) {
	case 4:
		return "IP: " + netip.AddrFrom4([4]byte(b)).String()
	case 16:
		return "IP: [IPv6]"
	default:
		return ""
	}
}
